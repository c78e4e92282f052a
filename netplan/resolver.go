// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package netplan

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	e "github.com/storpool/netplan-go/errors"
)

// checkExists verifies that every name is defined in the model and reports
// all of the missing ones at once.
func (np *NetPlan) checkExists(names []string) error {
	var missing []string
	for _, name := range names {
		if _, ok := np.Interfaces[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", e.ErrInterfaceNotFound, strings.Join(missing, ", "))
	}
	return nil
}

// GetAllInterfaces returns the closure of the named interfaces over the
// member and link relations, in both directions: the seeds, everything they
// reference transitively, and everything that references them transitively.
// All seed names must exist in the model; names discovered during the
// traversal that have no definition are skipped. An empty seed list selects
// the whole model.
func (np *NetPlan) GetAllInterfaces(names ...string) (*NetPlan, error) {
	if len(names) == 0 {
		all := make(map[string]struct{}, len(np.Interfaces))
		for name := range np.Interfaces {
			all[name] = struct{}{}
		}
		return np.subset(all), nil
	}

	if err := np.checkExists(names); err != nil {
		return nil, err
	}

	visited := make(map[string]struct{}, len(np.Interfaces))
	queue := make([]string, 0, len(np.Interfaces))
	enqueue := func(name string) {
		if _, ok := visited[name]; ok {
			return
		}
		if _, ok := np.Interfaces[name]; !ok {
			log.Debugf("skipping reference to undefined interface %q", name)
			return
		}
		visited[name] = struct{}{}
		queue = append(queue, name)
	}

	for _, name := range names {
		enqueue(name)
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		cfg := np.Interfaces[name]
		for _, ref := range cfg.References() {
			enqueue(ref)
		}
		for _, referrer := range np.referrers[name] {
			enqueue(referrer)
		}
	}
	return np.subset(visited), nil
}

// GetPhysicalInterfaces returns the physical subset of GetAllInterfaces.
// The closure is computed first and filtered afterwards, so physical
// interfaces reachable only through virtual ones are still found.
func (np *NetPlan) GetPhysicalInterfaces(names ...string) (*NetPlan, error) {
	all, err := np.GetAllInterfaces(names...)
	if err != nil {
		return nil, err
	}
	phys := make(map[string]struct{}, len(all.Interfaces))
	for name, cfg := range all.Interfaces {
		if np.IsPhysical(cfg) {
			phys[name] = struct{}{}
		}
	}
	return np.subset(phys), nil
}
