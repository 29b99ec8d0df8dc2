// Registry endpoint tables: which RDAP base URL serves a TLD's structured
// lookups, and which WHOIS host answers its legacy port-43 queries. TLDs
// absent from the RDAP table skip structured lookup entirely; TLDs absent
// from the WHOIS table fall back to the whois-servers.net aliases.

package checker

import "strings"

// rdapEndpoints maps TLD suffixes to RDAP base URLs. Domain lookups append
// "/domain/<name>" to the base.
var rdapEndpoints = map[string]string{
	".com": "https://rdap.verisign.com/com/v1",
	".net": "https://rdap.verisign.com/net/v1",
	".org": "https://rdap.publicinterestregistry.org/rdap",
	".io":  "https://rdap.identitydigital.services/rdap",
	".co":  "https://rdap.nic.co",
	".me":  "https://rdap.nic.me",
	".dev": "https://pubapi.registry.google/rdap",
	".app": "https://pubapi.registry.google/rdap",
	".xyz": "https://rdap.centralnic.com/xyz",
}

// whoisServers maps TLD suffixes to their authoritative WHOIS hosts.
var whoisServers = map[string]string{
	".com": "whois.verisign-grs.com",
	".net": "whois.verisign-grs.com",
	".org": "whois.publicinterestregistry.org",
	".io":  "whois.nic.io",
	".co":  "whois.nic.co",
	".me":  "whois.nic.me",
	".ai":  "whois.nic.ai",
	".dev": "whois.nic.google",
	".app": "whois.nic.google",
	".xyz": "whois.nic.xyz",
}

// domainTLD extracts the TLD suffix (including the leading dot) from a full
// domain string. Returns "" when the domain has no dot.
func domainTLD(domain string) string {
	idx := strings.LastIndex(domain, ".")
	if idx < 0 {
		return ""
	}
	return domain[idx:]
}

// fallbackWhoisServer returns the whois-servers.net alias for a TLD with no
// explicit table entry. The alias network CNAMEs to the registry's real
// WHOIS host for most common TLDs.
func fallbackWhoisServer(tld string) string {
	return strings.TrimPrefix(tld, ".") + ".whois-servers.net"
}
