// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

type memoryStatistics struct {
	log   *logger.L
	delay time.Duration
}

func newMemoryStatistics(delay time.Duration) *memoryStatistics {
	return &memoryStatistics{
		log:   logger.New("memory"),
		delay: delay,
	}
}

func (m *memoryStatistics) Run(_ interface{}, shutdown <-chan struct{}) {
	for {
		m.report()
		select {
		case <-shutdown:
			return
		case <-time.After(m.delay):
		}
	}
}

func (m *memoryStatistics) report() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	text, err := json.Marshal(ms)
	if nil != err {
		m.log.Errorf("marshal error: %s", err)
	} else {
		m.log.Debugf("stats: %s", text)
	}
	a := ms.Alloc / mega
	t := ms.TotalAlloc / mega
	s := ms.Sys / mega
	m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)
}
