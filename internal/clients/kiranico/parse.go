package kiranico

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
)

// findFirst returns the first element with the given tag in depth-first
// order, or nil.
func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every element with the given tag in depth-first order.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findAll(c, tag)...)
	}
	return out
}

// findHeading returns the first element with the given tag whose text
// contains want, or nil.
func findHeading(n *html.Node, tag, want string) *html.Node {
	for _, h := range findAll(n, tag) {
		if strings.Contains(nodeText(h), want) {
			return h
		}
	}
	return nil
}

// nodeText returns the concatenated, whitespace-normalized text of a
// node subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// attrVal returns the value of the named attribute, or "".
func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// parseGrant splits a talent link text like "Attack Boost +2" into the
// talent name and level.
func parseGrant(text string) (entities.TalentGrant, error) {
	idx := strings.LastIndex(text, "+")
	if idx < 0 {
		return entities.TalentGrant{}, errors.Internalf("talent grant %q has no level suffix", text)
	}
	level, err := strconv.Atoi(strings.TrimSpace(text[idx+1:]))
	if err != nil {
		return entities.TalentGrant{}, errors.Internalf("talent grant %q has invalid level", text)
	}
	name := strings.TrimSpace(text[:idx])
	if name == "" {
		return entities.TalentGrant{}, errors.Internalf("talent grant %q has empty name", text)
	}
	return entities.TalentGrant{TalentName: name, Level: int32(level)}, nil
}

// parseLevel parses a level cell like "Lv2" or "Lv 2".
func parseLevel(text string) (int32, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "Lv"))
	level, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.Internalf("invalid level cell %q", text)
	}
	return int32(level), nil
}

// parseGemSlots parses a slot notation like "[2][1][1]" into per-size
// counts. Digits outside 1-4 are ignored; the site renders empty slots
// as "[0]".
func parseGemSlots(text string) entities.GemSlots {
	var slots entities.GemSlots
	for _, r := range text {
		if r >= '1' && r <= '0'+entities.MaxGemSlotSize {
			slots[r-'1']++
		}
	}
	return slots
}
