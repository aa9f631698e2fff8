// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

// Package referrer buckets HTTP referrers into traffic-source categories.
//
// Two policies coexist on purpose. The traffic pie uses PolicySocialOnly
// and drops everything outside the three tracked campaign channels; the
// sales dashboard uses PolicyInclusive and accounts for every request.
// Unifying them would silently change both charts.
package referrer

import (
	"strings"
)

// Policy selects a classification scheme.
type Policy string

const (
	// PolicySocialOnly recognizes only Google, LinkedIn and Twitter.
	// Any other referrer is excluded from the distribution.
	PolicySocialOnly Policy = "social"

	// PolicyInclusive buckets every request: the three social channels,
	// Facebook, other search engines, direct visits, and a catch-all.
	PolicyInclusive Policy = "inclusive"
)

// Traffic-source categories.
const (
	CategoryGoogle        = "Google"
	CategoryLinkedIn      = "LinkedIn"
	CategoryTwitter       = "Twitter"
	CategoryFacebook      = "Facebook"
	CategoryOtherSearch   = "Other Search"
	CategoryOtherReferral = "Other Referral"
	CategoryDirect        = "Direct"
)

// Classifier buckets referrers under a policy.
type Classifier struct{}

// New returns a ready Classifier.
func New() *Classifier {
	return &Classifier{}
}

// Classify returns the category for a referrer under the given policy.
// The second return is false when the policy excludes the referrer from
// the distribution (only possible under PolicySocialOnly).
// An empty referrer is the normalized form of the "-" placeholder.
func (c *Classifier) Classify(referrer string, policy Policy) (string, bool) {
	ref := strings.ToLower(referrer)

	switch {
	case strings.Contains(ref, "google.com"):
		return CategoryGoogle, true
	case strings.Contains(ref, "linkedin.com"):
		return CategoryLinkedIn, true
	case strings.Contains(ref, "twitter.com"):
		return CategoryTwitter, true
	}

	if policy == PolicySocialOnly {
		return "", false
	}

	switch {
	case ref == "":
		return CategoryDirect, true
	case strings.Contains(ref, "facebook.com"):
		return CategoryFacebook, true
	case strings.Contains(ref, "bing.com"), strings.Contains(ref, "yahoo.com"):
		return CategoryOtherSearch, true
	default:
		return CategoryOtherReferral, true
	}
}

// Categories returns the category names a policy can produce, in display
// order.
func Categories(policy Policy) []string {
	if policy == PolicySocialOnly {
		return []string{CategoryGoogle, CategoryLinkedIn, CategoryTwitter}
	}
	return []string{
		CategoryGoogle,
		CategoryLinkedIn,
		CategoryTwitter,
		CategoryFacebook,
		CategoryOtherSearch,
		CategoryOtherReferral,
		CategoryDirect,
	}
}

// ParsePolicy maps a request parameter to a Policy.
// Unknown values default to PolicySocialOnly.
func ParsePolicy(s string) Policy {
	if Policy(s) == PolicyInclusive {
		return PolicyInclusive
	}
	return PolicySocialOnly
}
