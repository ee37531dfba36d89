// Package httpd serves prepared guest assets over HTTP during install.
// Guests fetch their unattended-install files and tools from here, so
// the server is read-only and can optionally punch an iptables hole for
// its listen port on locked-down hosts.
package httpd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/virtbuild/guestprep/internal/log"
)

// Server serves the assets directory to installing guests.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	firewall   *Firewall
}

// NewServer creates a server exposing assetsDir on bindAddr. With
// openFirewall set, an INPUT ACCEPT rule for the listen port is managed
// around the server lifetime.
func NewServer(assetsDir, bindAddr string, openFirewall bool) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
	}

	s.router.Use(Recovery)
	s.router.Use(Logger)

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))

	s.httpServer = &http.Server{
		Addr:         bindAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if openFirewall {
		port, err := listenPort(bindAddr)
		if err != nil {
			return nil, err
		}
		fw, err := NewFirewall(port)
		if err != nil {
			return nil, err
		}
		s.firewall = fw
	}

	return s, nil
}

// Start opens the firewall (if configured) and serves until Stop.
func (s *Server) Start() error {
	if s.firewall != nil {
		if err := s.firewall.Open(); err != nil {
			return err
		}
	}

	log.Infof("Serving guest assets on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("asset server error: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down and closes the firewall hole.
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("Shutting down asset server")

	err := s.httpServer.Shutdown(ctx)

	if s.firewall != nil {
		if fwErr := s.firewall.Close(); fwErr != nil {
			log.Warnf("Failed to close firewall: %v", fwErr)
		}
	}

	return err
}

func listenPort(bindAddr string) (uint16, error) {
	_, portStr, err := net.SplitHostPort(bindAddr)
	if err != nil {
		return 0, fmt.Errorf("invalid listen address %s: %w", bindAddr, err)
	}
	port, err := net.LookupPort("tcp", portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid listen port %s: %w", portStr, err)
	}
	return uint16(port), nil
}
