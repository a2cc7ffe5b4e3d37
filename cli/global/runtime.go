/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DocCert/DocCert/cli/auth"
	"github.com/DocCert/DocCert/cli/communications"
	"github.com/DocCert/DocCert/cli/config"
	"github.com/DocCert/DocCert/cli/credentials"
	"github.com/DocCert/DocCert/cli/display"
	"github.com/DocCert/DocCert/cli/documents"
	"github.com/DocCert/DocCert/cli/session"
	"github.com/DocCert/DocCert/common/interfaces"
	"github.com/DocCert/DocCert/common/null"
	"github.com/DocCert/DocCert/common/ulogger"
)

// Runtime holds everything a command needs for one invocation
type Runtime struct {
	Config    *config.Config
	Logger    interfaces.Logger
	Printer   *display.Printer
	Registry  *prometheus.Registry
	Manager   *session.Manager
	Auth      *auth.Service
	Documents *documents.Service

	store  credentials.Store
	closer func()
}

// Open loads the configuration and opens the credential file. Flags set on
// the root command override the configuration.
func Open() (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if Output != "" {
		cfg.Output = Output
	}
	if Debug {
		cfg.Debug = true
	}

	store, err := credentials.OpenBolt(cfg.CredentialFile)
	if err != nil {
		return nil, err
	}

	r, err := New(cfg, store, os.Stdout, os.Stderr)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return r, nil
}

// New wires the services on top of store. The returned Runtime owns store.
func New(cfg *config.Config, store credentials.Store, out, errOut io.Writer) (*Runtime, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	format, err := display.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}

	r := &Runtime{
		Config:   cfg,
		Printer:  display.New(out, errOut, format),
		Registry: prometheus.NewRegistry(),
		store:    store,
	}

	if err = r.openLogger(errOut); err != nil {
		return nil, err
	}

	creds, err := credentials.New(store)
	if err != nil {
		return nil, err
	}

	// The refresh call must not go through the session stages
	refreshComms, err := r.communications(cfg.AuthURL, nil)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	refresher, err := auth.NewRefresher(refreshComms)
	if err != nil {
		return nil, err
	}

	r.Manager, err = session.New(
		session.WithCredentials(creds),
		session.WithRefresher(refresher),
		session.WithLogger(r.Logger),
		session.WithRegisterer(r.Registry))
	if err != nil {
		return nil, err
	}
	r.Manager.OnExpired(func(reason error) {
		r.Printer.Message("Session expired, please log in again (%s)", reason.Error())
	})

	transport := r.Manager.Transport(nil)

	authComms, err := r.communications(cfg.AuthURL, transport)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	r.Auth, err = auth.New(
		auth.WithCommunications(authComms),
		auth.WithManager(r.Manager),
		auth.WithLogger(r.Logger))
	if err != nil {
		return nil, err
	}

	docComms, err := r.communications(cfg.DocumentURL, transport)
	if err != nil {
		return nil, fmt.Errorf("document service: %w", err)
	}
	r.Documents, err = documents.New(
		documents.WithCommunications(docComms),
		documents.WithExplorerURL(cfg.ExplorerURL),
		documents.WithLogger(r.Logger))
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Runtime) openLogger(errOut io.Writer) error {
	if r.Config.LogFile == "" && !r.Config.Debug {
		r.Logger = null.Logger()
		r.closer = func() {}
		return nil
	}

	options := []ulogger.Option{
		ulogger.WithPrefix(Name),
		ulogger.WithDebug(r.Config.Debug),
	}
	if r.Config.LogFile != "" {
		options = append(options, ulogger.WithLogFile(r.Config.LogFile))
	}
	if r.Config.Debug {
		options = append(options, ulogger.WithConsole(errOut))
	}

	logger, err := ulogger.New(options...)
	if err != nil {
		return fmt.Errorf("unable to open log: %w", err)
	}
	r.Logger = logger
	r.closer = logger.Close
	return nil
}

func (r *Runtime) communications(baseURL string, transport http.RoundTripper) (*communications.Communications, error) {
	options := []communications.Option{
		communications.WithBaseURL(baseURL),
		communications.WithTimeout(r.Config.Timeout),
		communications.WithLogger(r.Logger),
	}
	if transport != nil {
		options = append(options, communications.WithTransport(transport))
	}
	return communications.New(options...)
}

// Close logs the session metrics in debug mode and releases the
// credential file and the log
func (r *Runtime) Close() error {
	if r.Config.Debug {
		r.logMetrics()
	}

	err := r.store.Close()
	r.closer()
	return err
}

func (r *Runtime) logMetrics() {
	families, err := r.Registry.Gather()
	if err != nil {
		r.Logger.Warningf(2001, "unable to gather metrics: %s", err.Error())
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			r.Logger.Debugf(2002, "metric %s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
}
