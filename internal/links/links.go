// Package links deterministically expands a normalized identifier into an
// ordered set of labeled search and profile URLs. Generation is pure string
// templating: no network access, and no claim that any URL resolves to a
// real profile.
package links

import (
	"net/url"

	"github.com/mesh-intelligence/dossier/internal/normalize"
	"github.com/mesh-intelligence/dossier/pkg/types"
)

// quoted escapes a term as an exact-match ("quoted") search query value.
func quoted(term string) string {
	return url.QueryEscape(`"` + term + `"`)
}

// Email returns the link set for a normalized email address: search
// engines, social platforms keyed on the address or its username, breach
// checks, and a domain WHOIS lookup.
func Email(email string) []types.Link {
	username, domain := normalize.SplitEmail(email)

	return []types.Link{
		{Label: "Google Search", URL: "https://www.google.com/search?q=" + quoted(email)},
		{Label: "Google Search (username)", URL: "https://www.google.com/search?q=" + quoted(username)},
		{Label: "DuckDuckGo", URL: "https://duckduckgo.com/?q=" + quoted(email)},
		{Label: "Yandex", URL: "https://yandex.com/search/?text=" + quoted(email)},
		{Label: "LinkedIn", URL: "https://www.linkedin.com/pub/dir/?email=" + url.QueryEscape(email)},
		{Label: "Facebook", URL: "https://www.facebook.com/search/top/?q=" + url.QueryEscape(email)},
		{Label: "Twitter", URL: "https://twitter.com/search?q=" + url.QueryEscape(email)},
		{Label: "Instagram", URL: "https://www.instagram.com/" + url.PathEscape(username)},
		{Label: "GitHub", URL: "https://github.com/" + url.PathEscape(username)},
		{Label: "Medium", URL: "https://medium.com/@" + url.PathEscape(username)},
		{Label: "Quora", URL: "https://www.quora.com/profile/" + url.PathEscape(username)},
		{Label: "HaveIBeenPwned", URL: "https://haveibeenpwned.com/account/" + url.PathEscape(email)},
		{Label: "BreachDirectory", URL: "https://breachdirectory.org/" + url.PathEscape(email)},
		{Label: "Domain WHOIS", URL: "https://whois.domaintools.com/" + url.PathEscape(domain)},
	}
}

// Phone returns the link set for a normalized ten-digit Indian mobile
// number: search engines (bare and with country code), caller-ID lookups,
// and messaging-platform checks.
func Phone(number string) []types.Link {
	full := "+91" + number

	return []types.Link{
		{Label: "Google Search", URL: "https://www.google.com/search?q=" + quoted(number)},
		{Label: "Google Search (with country code)", URL: "https://www.google.com/search?q=" + quoted(full)},
		{Label: "DuckDuckGo", URL: "https://duckduckgo.com/?q=" + quoted(number)},
		{Label: "Yandex", URL: "https://yandex.com/search/?text=" + quoted(number)},
		{Label: "Truecaller", URL: "https://www.truecaller.com/search/in/" + url.PathEscape(number)},
		{Label: "WhatsApp", URL: "https://wa.me/91" + number},
		{Label: "Telegram", URL: "https://t.me/" + url.PathEscape(full)},
		{Label: "Signal", URL: "https://signal.me/#p/" + url.PathEscape(full)},
	}
}

// Name returns the link set for a validated full name: social platforms,
// professional databases, general search engines, and India-specific
// directories. When location is non-empty, location-qualified variants are
// appended after the base set.
func Name(parts normalize.NameParts, location string) []types.Link {
	name := url.QueryEscape(parts.Full)
	handle := url.PathEscape(normalize.Handle(parts))

	out := []types.Link{
		{Label: "Google Search", URL: "https://www.google.com/search?q=" + quoted(parts.Full)},
		{Label: "Bing", URL: "https://www.bing.com/search?q=" + quoted(parts.Full)},
		{Label: "DuckDuckGo", URL: "https://duckduckgo.com/?q=" + quoted(parts.Full)},
		{Label: "Yandex", URL: "https://yandex.com/search/?text=" + quoted(parts.Full)},
		{Label: "Facebook People Search", URL: "https://www.facebook.com/search/people/?q=" + name},
		{Label: "LinkedIn People Search", URL: "https://www.linkedin.com/search/results/people/?keywords=" + name},
		{Label: "Twitter", URL: "https://twitter.com/search?q=" + name + "&f=user"},
		{Label: "Instagram", URL: "https://www.instagram.com/" + handle},
		{Label: "YouTube", URL: "https://www.youtube.com/results?search_query=" + name},
		{Label: "Reddit", URL: "https://www.reddit.com/search/?q=" + name + "&type=user"},
		{Label: "GitHub Users", URL: "https://github.com/search?q=" + name + "&type=users"},
		{Label: "Google Scholar", URL: "https://scholar.google.com/scholar?q=author%3A" + quoted(parts.Full)},
		{Label: "Naukri", URL: "https://www.naukri.com/mnjuser/profile?id=" + name},
		{Label: "TimesJobs", URL: "https://www.timesjobs.com/candidate/resume-search.html?searchType=personalizedSearch&from=submit&txtKeywords=" + name},
		{Label: "Justdial", URL: "https://www.justdial.com/searchresult.php?srchname=" + name},
	}

	if location != "" {
		loc := url.QueryEscape(location)
		out = append(out,
			types.Link{Label: "Google Search (with location)", URL: "https://www.google.com/search?q=" + quoted(parts.Full) + "+" + quoted(location)},
			types.Link{Label: "Facebook People Search (with location)", URL: "https://www.facebook.com/search/people/?q=" + name + "&city=" + loc},
			types.Link{Label: "LinkedIn People Search (with location)", URL: "https://www.linkedin.com/search/results/people/?keywords=" + name + "&geoUrn=%5B%22" + loc + "%22%5D"},
			types.Link{Label: "Justdial (with location)", URL: "https://www.justdial.com/" + url.PathEscape(location) + "/search?q=" + name},
		)
	}

	return out
}

// ForKind dispatches to the generator for the identifier kind. The
// normalized value must already have passed the corresponding normalizer.
func ForKind(kind, normalized, location string) ([]types.Link, error) {
	switch kind {
	case types.KindEmail:
		return Email(normalized), nil
	case types.KindPhone:
		return Phone(normalized), nil
	case types.KindName:
		parts, err := normalize.Name(normalized)
		if err != nil {
			return nil, err
		}
		return Name(parts, location), nil
	default:
		return nil, types.ErrInvalidKind
	}
}
