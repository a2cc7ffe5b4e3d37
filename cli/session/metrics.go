/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	refresh *prometheus.CounterVec
	retries prometheus.Counter
	expired prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		refresh: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doccert",
			Subsystem: "session",
			Name:      "refresh_total",
			Help:      "Access token refresh calls by result.",
		}, []string{"result"}),
		retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "doccert",
			Subsystem: "session",
			Name:      "retry_total",
			Help:      "Requests resubmitted after an authentication failure.",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "doccert",
			Subsystem: "session",
			Name:      "expired_total",
			Help:      "Sessions torn down after an unrecoverable authentication failure.",
		}),
	}

	var err error
	if m.refresh, err = register(reg, m.refresh); err != nil {
		return nil, err
	}
	if m.retries, err = register(reg, m.retries); err != nil {
		return nil, err
	}
	if m.expired, err = register(reg, m.expired); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, reusing the collector already registered under
// the same name so that several managers can share one registry
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}
