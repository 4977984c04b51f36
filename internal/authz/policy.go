// Package authz decides admin capability from a static allow-list of
// identity-provider uids and emails. The policy is an explicit value built
// from configuration and passed to whoever needs it; there is no package
// state to mutate.
package authz

import (
	"strings"

	"github.com/Holly45vd/products/internal/model"
)

// Policy is an admin allow-list. The zero value allows nobody.
type Policy struct {
	uids   map[string]struct{}
	emails map[string]struct{}
}

// NewPolicy builds a policy from uid and email allow-lists. Emails are
// compared case-insensitively.
func NewPolicy(uids, emails []string) *Policy {
	p := &Policy{
		uids:   make(map[string]struct{}, len(uids)),
		emails: make(map[string]struct{}, len(emails)),
	}
	for _, u := range uids {
		if u != "" {
			p.uids[u] = struct{}{}
		}
	}
	for _, e := range emails {
		if e != "" {
			p.emails[strings.ToLower(e)] = struct{}{}
		}
	}
	return p
}

// IsAdmin reports whether the identity is on the allow-list.
func (p *Policy) IsAdmin(ident *model.Identity) bool {
	if p == nil || ident == nil {
		return false
	}
	if _, ok := p.uids[ident.UID]; ok {
		return true
	}
	_, ok := p.emails[strings.ToLower(ident.Email)]
	return ok
}
