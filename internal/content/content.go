// Package content holds the static text of the portfolio page.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var document []byte

// Focus is one of the "what I work on" cards under About.
type Focus struct {
	Heading string   `yaml:"heading"`
	Stack   []string `yaml:"stack"`
	Text    string   `yaml:"text"`
}

type Profile struct {
	Name   string   `yaml:"name"`
	Photo  string   `yaml:"photo"`
	CV     string   `yaml:"cv"`
	Email  string   `yaml:"email"`
	Titles []string `yaml:"titles"`
	About  []string `yaml:"about"`
	Focus  []Focus  `yaml:"focus"`
}

// NavItem links to a section on the same page.
type NavItem struct {
	Name   string `yaml:"name"`
	Anchor string `yaml:"anchor"`
}

type Project struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	GitHub      string `yaml:"github"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

// HasLink reports whether the project has a live link. "#" is a placeholder.
func (p Project) HasLink() bool {
	return p.URL != "" && p.URL != "#"
}

// HasSource reports whether the project has a public repository.
func (p Project) HasSource() bool {
	return p.GitHub != "" && p.GitHub != "#"
}

type Job struct {
	Company    string   `yaml:"company"`
	Role       string   `yaml:"role"`
	Period     string   `yaml:"period"`
	Highlights []string `yaml:"highlights"`
	Tags       []string `yaml:"tags"`
}

type SkillCategory struct {
	Category string   `yaml:"category"`
	Icon     string   `yaml:"icon"`
	Skills   []string `yaml:"skills"`
}

type Social struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Content is everything the page renders.
type Content struct {
	Profile    Profile         `yaml:"profile"`
	Nav        []NavItem       `yaml:"nav"`
	Projects   []Project       `yaml:"projects"`
	Experience []Job           `yaml:"experience"`
	Skills     []SkillCategory `yaml:"skills"`
	Socials    []Social        `yaml:"socials"`
}

// Load parses the embedded content document.
func Load() (*Content, error) {
	return Parse(document)
}

// Parse decodes and validates a content document.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the fields the page logic depends on.
func (c *Content) Validate() error {
	var errs []error
	if len(c.Profile.Titles) == 0 {
		errs = append(errs, errors.New("profile.titles: at least one title is required"))
	}
	if c.Profile.Email == "" {
		errs = append(errs, errors.New("profile.email: required"))
	}
	seen := make(map[string]bool, len(c.Nav))
	for i, n := range c.Nav {
		if !strings.HasPrefix(n.Anchor, "#") || len(n.Anchor) < 2 {
			errs = append(errs, fmt.Errorf("nav[%d]: anchor %q must look like #section", i, n.Anchor))
			continue
		}
		if seen[n.Anchor] {
			errs = append(errs, fmt.Errorf("nav[%d]: duplicate anchor %q", i, n.Anchor))
		}
		seen[n.Anchor] = true
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	return nil
}

// Section reports whether the nav bar links to anchor.
func (c *Content) Section(anchor string) bool {
	for _, n := range c.Nav {
		if n.Anchor == anchor {
			return true
		}
	}
	return false
}
