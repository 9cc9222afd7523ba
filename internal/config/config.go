package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/listadapter/internal/tui/styles"
)

const (
	appName              = "listadapter"
	defaultDataDirectory = ".listadapter"

	// DebugEnv forces debug logging when set to a true value.
	DebugEnv = "LISTADAPTER_DEBUG"
)

type Config struct {
	Options *Options `json:"options,omitempty"`

	workingDir string
}

type Options struct {
	Debug         bool           `json:"debug,omitempty"`
	DataDirectory string         `json:"data_directory,omitempty"` // Relative to the working directory
	Theme         string         `json:"theme,omitempty"`
	List          *ListOptions   `json:"list,omitempty"`
	Header        *HeaderOptions `json:"header,omitempty"`
}

type ListOptions struct {
	// Blank lines between entries.
	Gap int `json:"gap,omitempty"`
	// Quiet time after the last line scroll before the drag is over. Zero
	// keeps the list default.
	SettleDelayMS int `json:"settle_delay_ms,omitempty"`
	// Time between deceleration steps after a page scroll. Zero keeps the
	// list default.
	DecelerationFrameMS int `json:"deceleration_frame_ms,omitempty"`
}

// HeaderOptions override the banner declared by the catalog.
type HeaderOptions struct {
	Text   string `json:"text,omitempty"`
	Hidden *bool  `json:"hidden,omitempty"`
}

func (c *Config) WorkingDir() string {
	return c.workingDir
}

func (c *Config) LogFile() string {
	return filepath.Join(c.Options.DataDirectory, "logs", fmt.Sprintf("%s.log", appName))
}

func (o *ListOptions) SettleDelay() time.Duration {
	return time.Duration(o.SettleDelayMS) * time.Millisecond
}

func (o *ListOptions) DecelerationFrame() time.Duration {
	return time.Duration(o.DecelerationFrameMS) * time.Millisecond
}

func (c *Config) setDefaults(workingDir string) {
	c.workingDir = workingDir
	if c.Options == nil {
		c.Options = &Options{}
	}
	if c.Options.DataDirectory == "" {
		c.Options.DataDirectory = defaultDataDirectory
	}
	if !filepath.IsAbs(c.Options.DataDirectory) {
		c.Options.DataDirectory = filepath.Join(workingDir, c.Options.DataDirectory)
	}
	if c.Options.Theme == "" {
		c.Options.Theme = styles.DefaultTheme
	}
	if c.Options.List == nil {
		c.Options.List = &ListOptions{}
	}
	if c.Options.Header == nil {
		c.Options.Header = &HeaderOptions{}
	}
}

func (c *Config) Validate() error {
	var errs []error
	if l := c.Options.List; l != nil {
		if l.Gap < 0 {
			errs = append(errs, fmt.Errorf("list.gap must not be negative, got %d", l.Gap))
		}
		if l.SettleDelayMS < 0 {
			errs = append(errs, fmt.Errorf("list.settle_delay_ms must not be negative, got %d", l.SettleDelayMS))
		}
		if l.DecelerationFrameMS < 0 {
			errs = append(errs, fmt.Errorf("list.deceleration_frame_ms must not be negative, got %d", l.DecelerationFrameMS))
		}
	}
	if err := styles.NewManager(styles.DefaultTheme).SetTheme(c.Options.Theme); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
