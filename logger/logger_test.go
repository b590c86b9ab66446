// Copyright (C) 2026 The Succinct-Neo Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestDefaultIsUsable(t *testing.T) {
	assert.NotNil(t, Default)
}

func TestHookSeesLoggedRecords(t *testing.T) {
	l := New()

	var buf bytes.Buffer
	l.entry.Out = &buf
	l.entry.Level = logrus.DebugLevel

	var seen []string
	l.AddHook(&recordingHook{seen: &seen})

	l.Infof("hello %s", "world")
	l.Debugf("low level detail")

	assert.Len(t, seen, 2)
	assert.Contains(t, seen[0], "hello world")
	assert.Contains(t, seen[1], "low level detail")
}

func TestWithFieldAttachesStructuredData(t *testing.T) {
	l := New()
	var buf bytes.Buffer
	l.entry.Out = &buf

	l.WithField("level", 3).Info("built a level")
	assert.Contains(t, buf.String(), "level=3")
}

type recordingHook struct {
	seen *[]string
}

func (h *recordingHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *recordingHook) Fire(e *logrus.Entry) error {
	*h.seen = append(*h.seen, e.Message)
	return nil
}
