package services

import (
	"encoding/json"
	"fmt"

	"github.com/vango-dev/domattr/pkg/dom"
)

// Hook attaches a client hook by name with an optional JSON config.
type Hook struct {
	HookName string
	Config   any
}

// Name returns the service name used in error messages.
func (h *Hook) Name() string { return "hook:" + h.HookName }

// Attach implements attrs.Service. It writes data-hook and, when the config
// encodes to something other than null or {}, data-hook-config.
func (h *Hook) Attach(el dom.Element) error {
	if h.HookName == "" {
		return fmt.Errorf("services: hook service needs a name")
	}
	el.SetAttribute("data-hook", h.HookName)

	if h.Config == nil {
		el.RemoveAttribute("data-hook-config")
		return nil
	}
	b, err := json.Marshal(h.Config)
	if err != nil {
		return fmt.Errorf("services: hook %s config: %w", h.HookName, err)
	}
	cfg := string(b)
	if cfg == "{}" || cfg == "null" {
		el.RemoveAttribute("data-hook-config")
		return nil
	}
	el.SetAttribute("data-hook-config", cfg)
	return nil
}
