// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/ledger"
	"github.com/regnet/regnetd/messagebus"
)

// logs every committed operation from the message bus
type eventLogger struct {
	log    *logger.L
	events *messagebus.Queue
	count  uint64
}

func newEventLogger(events *messagebus.Queue) *eventLogger {
	return &eventLogger{
		log:    logger.New("events"),
		events: events,
	}
}

func (e *eventLogger) Run(_ interface{}, shutdown <-chan struct{}) {
	e.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case event := <-e.events.Chan():
			e.count += 1
			e.log.Infof("%s %s: %s  at: %s", event.ID, event.Operation, describeKey(event.Key), event.Timestamp.Format(time.RFC3339))
		}
	}

	if dropped := e.events.Dropped(); dropped > 0 {
		e.log.Warnf("dropped events: %d", dropped)
	}
	e.log.Infof("finished after: %d events", e.count)
}

// render a composite key as namespace and attributes
func describeKey(key compositekey.Key) string {
	namespace, attributes, err := compositekey.Split(key)
	if nil != err {
		return "invalid key: " + err.Error()
	}
	text, err := json.Marshal(attributes)
	if nil != err {
		return namespace
	}
	return namespace + " " + string(text)
}

// logs ledger statistics at a fixed interval
type statisticsReporter struct {
	log      *logger.L
	ledger   *ledger.Ledger
	interval time.Duration
}

func newStatisticsReporter(l *ledger.Ledger, interval time.Duration) *statisticsReporter {
	return &statisticsReporter{
		log:      logger.New("statistics"),
		ledger:   l,
		interval: interval,
	}
}

func (s *statisticsReporter) Run(_ interface{}, shutdown <-chan struct{}) {
	if s.interval <= 0 {
		s.log.Info("disabled")
		<-shutdown
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			s.report()
		}
	}
	s.report()
}

func (s *statisticsReporter) report() {
	text, err := json.Marshal(s.ledger.Statistics())
	if nil != err {
		s.log.Errorf("marshal error: %s", err)
		return
	}
	s.log.Infof("ledger: %s", text)
}
