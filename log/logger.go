// Copyright 2022-2026 The Halcyon Authors
// This file is part of the Halcyon library.
//
// The Halcyon library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The Halcyon library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the Halcyon library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// logger carries a bound key/value context and forwards records to the
// shared logrus backend.
type logger struct {
	ctx     []interface{}
	mapPool sync.Pool
}

// New returns a child logger whose context is this logger's context plus ctx.
func (l *logger) New(ctx ...interface{}) Logger {
	child := &logger{
		ctx: append(append([]interface{}{}, l.ctx...), normalize(ctx)...),
		mapPool: sync.Pool{
			New: func() any {
				return map[string]interface{}{}
			},
		},
	}
	return child
}

func (l *logger) Trace(msg string, ctx ...interface{}) {
	l.write(msg, LvlTrace, ctx)
}

func (l *logger) Debug(msg string, ctx ...interface{}) {
	l.write(msg, LvlDebug, ctx)
}

func (l *logger) Info(msg string, ctx ...interface{}) {
	l.write(msg, LvlInfo, ctx)
}

func (l *logger) Warn(msg string, ctx ...interface{}) {
	l.write(msg, LvlWarn, ctx)
}

func (l *logger) Error(msg string, ctx ...interface{}) {
	l.write(msg, LvlError, ctx)
}

func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(msg, LvlCrit, ctx)
	os.Exit(1)
}

// write renders the bound context plus ctx into logrus fields and emits the
// record at the mapped level. Field maps are pooled to keep the hot path
// allocation-free.
func (l *logger) write(msg string, lvl Lvl, ctx []interface{}) {
	fields := l.mapPool.Get().(map[string]interface{})
	defer func() {
		for k := range fields {
			delete(fields, k)
		}
		l.mapPool.Put(fields)
	}()

	collect(fields, l.ctx)
	collect(fields, normalize(ctx))

	entry := terminal.WithFields(logrus.Fields(fields))
	switch lvl {
	case LvlTrace:
		entry.Trace(msg)
	case LvlDebug:
		entry.Debug(msg)
	case LvlInfo:
		entry.Info(msg)
	case LvlWarn:
		entry.Warn(msg)
	case LvlError:
		entry.Error(msg)
	case LvlCrit, LvlFatal:
		// Fatal would exit inside logrus; the facade owns process exit.
		entry.Error(msg)
	}
}

// collect folds a flat key/value pair list into fields. Keys that are not
// strings are stringified rather than dropped.
func collect(fields map[string]interface{}, ctx []interface{}) {
	for i := 0; i+1 < len(ctx); i += 2 {
		key, ok := ctx[i].(string)
		if !ok {
			key = fmt.Sprint(ctx[i])
		}
		val := ctx[i+1]
		if ts, ok := val.(TerminalStringer); ok {
			val = ts.TerminalString()
		}
		fields[key] = val
	}
}

// normalize pads an odd-length pair list so the dangling key still surfaces.
func normalize(ctx []interface{}) []interface{} {
	if len(ctx)%2 != 0 {
		ctx = append(ctx, "MISSING_VALUE")
	}
	return ctx
}
