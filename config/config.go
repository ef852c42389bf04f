// Package config loads ACL entries and RBAC role graphs from local YAML
// files into the in-memory security policy constructors, following the
// teacher's own config package's load-then-construct idiom. Remote policy
// distribution is out of scope per spec.md Non-goals — this is local-file
// configuration only.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravwell/osguard/security"
)

// AclEntryConfig is the YAML-facing shape of a security.AclEntry.
type AclEntryConfig struct {
	Identity   string   `yaml:"identity"`
	Resource   string   `yaml:"resource"`
	Permission []string `yaml:"permission"`
	Allow      bool     `yaml:"allow"`
}

// AclConfig is the YAML-facing shape of a security.AccessControlList.
type AclConfig struct {
	Entries       []AclEntryConfig `yaml:"entries"`
	DefaultAllow  bool             `yaml:"default_allow"`
	DefaultReason string           `yaml:"default_reason"`
}

// RoleConfig is the YAML-facing shape of a security.Role.
type RoleConfig struct {
	Name        string   `yaml:"name"`
	Permissions []string `yaml:"permissions"`
	Parents     []string `yaml:"parents"`
}

// RbacConfig is the YAML-facing shape of a security.RoleBasedAccessControl.
type RbacConfig struct {
	Roles       []RoleConfig        `yaml:"roles"`
	Assignments map[string][]string `yaml:"assignments"`
}

// LoadACL reads an AclConfig from path and builds the corresponding
// *security.AccessControlList.
func LoadACL(path string) (*security.AccessControlList, error) {
	var cfg AclConfig
	if err := readYAML(path, &cfg); err != nil {
		return nil, err
	}
	return BuildACL(cfg), nil
}

// BuildACL converts an already-parsed AclConfig into a policy value.
func BuildACL(cfg AclConfig) *security.AccessControlList {
	entries := make([]security.AclEntry, 0, len(cfg.Entries))
	for _, e := range cfg.Entries {
		entries = append(entries, security.AclEntry{
			Identity:           e.Identity,
			ResourcePattern:    e.Resource,
			PermissionPatterns: e.Permission,
			Allow:              e.Allow,
		})
	}
	acl := security.NewACL(entries...)
	if cfg.DefaultAllow {
		acl.WithDefault(security.AllowDecision())
	} else {
		reason := cfg.DefaultReason
		if reason == "" {
			reason = "no matching ACL entry"
		}
		acl.WithDefault(security.DenyDecision(reason))
	}
	return acl
}

// LoadRBAC reads an RbacConfig from path and builds the corresponding
// *security.RoleBasedAccessControl.
func LoadRBAC(path string) (*security.RoleBasedAccessControl, error) {
	var cfg RbacConfig
	if err := readYAML(path, &cfg); err != nil {
		return nil, err
	}
	return BuildRBAC(cfg), nil
}

// BuildRBAC converts an already-parsed RbacConfig into a policy value.
func BuildRBAC(cfg RbacConfig) *security.RoleBasedAccessControl {
	rbac := security.NewRBAC()
	for _, r := range cfg.Roles {
		rbac.AddRole(security.NewRole(r.Name, r.Permissions, r.Parents))
	}
	for principal, roles := range cfg.Assignments {
		rbac.Assign(principal, roles...)
	}
	return rbac
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}
