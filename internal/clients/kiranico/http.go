package kiranico

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
)

const (
	// DefaultBaseURL is the public kiranico data site.
	DefaultBaseURL = "https://mhwilds.kiranico.com"

	defaultLocale      = "en"
	defaultConcurrency = 8
	defaultTimeout     = 30 * time.Second

	userAgent = "mhwilds-tools/1.0"
)

// Config contains configuration for the HTTP kiranico client.
type Config struct {
	// BaseURL overrides the site root, mainly for tests.
	BaseURL string
	// Locale selects the site language segment, e.g. "en" or "fr".
	Locale string
	// HTTPClient overrides the HTTP client used for fetches.
	HTTPClient *http.Client
	// Concurrency bounds parallel detail-page fetches.
	Concurrency int
}

type httpClient struct {
	baseURL     string
	locale      string
	httpc       *http.Client
	concurrency int
}

// New creates an HTTP-backed kiranico client.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	c := &httpClient{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		locale:      cfg.Locale,
		httpc:       cfg.HTTPClient,
		concurrency: cfg.Concurrency,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.locale == "" {
		c.locale = defaultLocale
	}
	if c.httpc == nil {
		c.httpc = &http.Client{Timeout: defaultTimeout}
	}
	if c.concurrency <= 0 {
		c.concurrency = defaultConcurrency
	}
	return c, nil
}

// fetch GETs a page and parses it. The path may be absolute (listing
// pages link both ways) or site-relative.
func (c *httpClient) fetch(ctx context.Context, path string) (*html.Node, error) {
	url := path
	if !strings.HasPrefix(url, "http") {
		if !strings.HasPrefix(url, "/") {
			url = "/" + url
		}
		url = c.baseURL + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", url)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to fetch %s", url))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", url)
	}
	return doc, nil
}

func (c *httpClient) dataPath(section string) string {
	return fmt.Sprintf("/%s/data/%s", c.locale, section)
}

// listingLinks collects the (text, href) pairs of the first table on a
// listing page.
func (c *httpClient) listingLinks(ctx context.Context, section string) ([]pageRef, error) {
	doc, err := c.fetch(ctx, c.dataPath(section))
	if err != nil {
		return nil, err
	}
	table := findFirst(doc, "table")
	if table == nil {
		return nil, errors.Internalf("no table on %s listing page", section)
	}

	var refs []pageRef
	seen := make(map[string]bool)
	for _, a := range findAll(table, "a") {
		href := attrVal(a, "href")
		if href == "" || seen[href] {
			continue
		}
		seen[href] = true
		refs = append(refs, pageRef{name: nodeText(a), href: href})
	}
	return refs, nil
}

type pageRef struct {
	name string
	href string
}

// forEachRef fetches every referenced detail page with bounded
// concurrency, preserving listing order in the results.
func forEachRef[T any](ctx context.Context, c *httpClient, refs []pageRef, fn func(ctx context.Context, ref pageRef, doc *html.Node) (T, error)) ([]T, error) {
	results := make([]T, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, ref := range refs {
		g.Go(func() error {
			doc, err := c.fetch(gctx, ref.href)
			if err != nil {
				return err
			}
			out, err := fn(gctx, ref, doc)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *httpClient) ListTalents(ctx context.Context, _ *ListTalentsInput) (*ListTalentsOutput, error) {
	doc, err := c.fetch(ctx, c.dataPath("skills"))
	if err != nil {
		return nil, err
	}

	// The skills index groups talents under one heading per
	// classification; the heading text is the group name itself.
	var refs []pageRef
	var groups []entities.TalentGroup
	for _, group := range []entities.TalentGroup{
		entities.TalentGroupWeapon,
		entities.TalentGroupEquip,
		entities.TalentGroupGroup,
		entities.TalentGroupSeries,
	} {
		heading := findHeading(doc, "h3", string(group))
		if heading == nil || heading.Parent == nil {
			return nil, errors.Internalf("skills page has no %q section", group)
		}
		for _, row := range findAll(heading.Parent, "tr") {
			link := findFirst(row, "a")
			if link == nil {
				continue
			}
			refs = append(refs, pageRef{name: nodeText(link), href: attrVal(link, "href")})
			groups = append(groups, group)
		}
	}

	talents, err := forEachRef(ctx, c, refs, func(_ context.Context, ref pageRef, doc *html.Node) (entities.Talent, error) {
		body := findFirst(doc, "tbody")
		if body == nil {
			return entities.Talent{}, errors.Internalf("talent page %q has no level table", ref.name)
		}
		var levels []entities.TalentLevel
		for _, row := range findAll(body, "tr") {
			cells := findAll(row, "td")
			if len(cells) < 2 {
				continue
			}
			level, err := parseLevel(nodeText(cells[0]))
			if err != nil {
				return entities.Talent{}, errors.Wrapf(err, "talent %q", ref.name)
			}
			levels = append(levels, entities.TalentLevel{
				Level:       level,
				Description: nodeText(cells[len(cells)-1]),
			})
		}
		return entities.Talent{Name: ref.name, Levels: levels}, nil
	})
	if err != nil {
		return nil, err
	}
	for i := range talents {
		talents[i].Group = groups[i]
	}

	sort.Slice(talents, func(i, j int) bool { return talents[i].Name < talents[j].Name })
	slog.InfoContext(ctx, "Fetched talents", "count", len(talents))
	return &ListTalentsOutput{Talents: talents}, nil
}

func (c *httpClient) ListArmorPieces(ctx context.Context, _ *ListArmorPiecesInput) (*ListArmorPiecesOutput, error) {
	refs, err := c.listingLinks(ctx, "armor-series")
	if err != nil {
		return nil, err
	}

	perSeries, err := forEachRef(ctx, c, refs, func(_ context.Context, ref pageRef, doc *html.Node) ([]entities.ArmorPiece, error) {
		return parseArmorSeries(ref, doc)
	})
	if err != nil {
		return nil, err
	}

	var pieces []entities.ArmorPiece
	for _, series := range perSeries {
		pieces = append(pieces, series...)
	}
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].Name < pieces[j].Name })
	slog.InfoContext(ctx, "Fetched armor pieces", "series", len(refs), "pieces", len(pieces))
	return &ListArmorPiecesOutput{ArmorPieces: pieces}, nil
}

// parseArmorSeries reads the equipment-talents table of one armor
// series page: one row per piece with kind, name, gem slots, and
// talent links.
func parseArmorSeries(ref pageRef, doc *html.Node) ([]entities.ArmorPiece, error) {
	heading := findHeading(doc, "th", "Talents")
	if heading == nil {
		return nil, errors.Internalf("armor series %q has no talents table", ref.name)
	}
	table := heading
	for table != nil && table.Data != "table" {
		table = table.Parent
	}
	if table == nil {
		return nil, errors.Internalf("armor series %q has a detached talents header", ref.name)
	}

	var pieces []entities.ArmorPiece
	for _, row := range findAll(table, "tr") {
		cells := findAll(row, "td")
		if len(cells) < 4 {
			continue // header row
		}

		slot, ok := slotForKind(nodeText(cells[0]))
		if !ok {
			return nil, errors.Internalf("armor series %q has unknown piece kind %q", ref.name, nodeText(cells[0]))
		}
		piece := entities.ArmorPiece{
			Name:  nodeText(cells[1]),
			Slot:  slot,
			Slots: parseGemSlots(nodeText(cells[2])),
		}
		for _, link := range findAll(cells[3], "a") {
			grant, err := parseGrant(nodeText(link))
			if err != nil {
				return nil, errors.Wrapf(err, "armor piece %q", piece.Name)
			}
			piece.Talents = append(piece.Talents, grant)
		}
		pieces = append(pieces, piece)
	}
	return pieces, nil
}

// slotForKind maps the piece-kind cell to an armor slot.
func slotForKind(kind string) (entities.Slot, bool) {
	lower := strings.ToLower(kind)
	switch {
	case strings.Contains(lower, "helm"), strings.Contains(lower, "head"):
		return entities.SlotHead, true
	case strings.Contains(lower, "mail"), strings.Contains(lower, "chest"):
		return entities.SlotChest, true
	case strings.Contains(lower, "brace"), strings.Contains(lower, "arm"):
		return entities.SlotArms, true
	case strings.Contains(lower, "coil"), strings.Contains(lower, "waist"):
		return entities.SlotWaist, true
	case strings.Contains(lower, "greaves"), strings.Contains(lower, "leg"):
		return entities.SlotLegs, true
	}
	return "", false
}

func (c *httpClient) ListCharms(ctx context.Context, _ *ListCharmsInput) (*ListCharmsOutput, error) {
	refs, err := c.listingLinks(ctx, "charms")
	if err != nil {
		return nil, err
	}

	charms, err := forEachRef(ctx, c, refs, func(_ context.Context, ref pageRef, doc *html.Node) (entities.Charm, error) {
		body := findFirst(doc, "tbody")
		if body == nil {
			return entities.Charm{}, errors.Internalf("charm page %q has no talent table", ref.name)
		}
		charm := entities.Charm{Name: ref.name}
		for _, row := range findAll(body, "tr") {
			cells := findAll(row, "td")
			if len(cells) < 2 {
				continue
			}
			level, err := parseLevel(nodeText(cells[1]))
			if err != nil {
				return entities.Charm{}, errors.Wrapf(err, "charm %q", ref.name)
			}
			charm.Talents = append(charm.Talents, entities.TalentGrant{
				TalentName: nodeText(cells[0]),
				Level:      level,
			})
		}
		return charm, nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(charms, func(i, j int) bool { return charms[i].Name < charms[j].Name })
	slog.InfoContext(ctx, "Fetched charms", "count", len(charms))
	return &ListCharmsOutput{Charms: charms}, nil
}

func (c *httpClient) ListJewels(ctx context.Context, _ *ListJewelsInput) (*ListJewelsOutput, error) {
	refs, err := c.listingLinks(ctx, "decorations")
	if err != nil {
		return nil, err
	}

	jewels, err := forEachRef(ctx, c, refs, func(_ context.Context, ref pageRef, doc *html.Node) (entities.Jewel, error) {
		title := findFirst(doc, "h2")
		if title == nil {
			return entities.Jewel{}, errors.Internalf("jewel page %q has no title", ref.name)
		}
		// The title carries the size in bracket notation: "Attack Jewel [1]".
		name := nodeText(title)
		bracket := strings.LastIndex(name, "[")
		if bracket < 0 {
			return entities.Jewel{}, errors.Internalf("jewel page %q has no size marker", name)
		}
		slots := parseGemSlots(name[bracket:])
		var size int32
		for s := 1; s <= entities.MaxJewelSize; s++ {
			if slots.Count(s) > 0 {
				size = int32(s)
			}
		}
		if size == 0 {
			return entities.Jewel{}, errors.Internalf("jewel page %q has no size marker", name)
		}

		jewel := entities.Jewel{Name: name, Size: size}
		body := findFirst(doc, "tbody")
		if body == nil {
			return entities.Jewel{}, errors.Internalf("jewel page %q has no talent table", name)
		}
		for _, row := range findAll(body, "tr") {
			cells := findAll(row, "td")
			if len(cells) < 2 {
				continue
			}
			level, err := parseLevel(nodeText(cells[1]))
			if err != nil {
				return entities.Jewel{}, errors.Wrapf(err, "jewel %q", name)
			}
			jewel.Talents = append(jewel.Talents, entities.TalentGrant{
				TalentName: nodeText(cells[0]),
				Level:      level,
			})
		}
		return jewel, nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(jewels, func(i, j int) bool { return jewels[i].Name < jewels[j].Name })
	slog.InfoContext(ctx, "Fetched jewels", "count", len(jewels))
	return &ListJewelsOutput{Jewels: jewels}, nil
}

func (c *httpClient) ListWeapons(ctx context.Context, _ *ListWeaponsInput) (*ListWeaponsOutput, error) {
	refs, err := c.listingLinks(ctx, "weapons")
	if err != nil {
		return nil, err
	}

	weapons, err := forEachRef(ctx, c, refs, func(_ context.Context, ref pageRef, doc *html.Node) (entities.Weapon, error) {
		title := findFirst(doc, "h2")
		if title == nil {
			return entities.Weapon{}, errors.Internalf("weapon page %q has no title", ref.name)
		}
		weapon := entities.Weapon{Name: nodeText(title)}

		// Weapon pages lay out properties as label/value rows.
		for _, row := range findAll(doc, "tr") {
			cells := findAll(row, "td")
			if len(cells) < 2 {
				continue
			}
			switch {
			case strings.Contains(nodeText(cells[0]), "Slots"):
				weapon.Slots = parseGemSlots(nodeText(cells[1]))
			case strings.Contains(nodeText(cells[0]), "Skills"):
				for _, link := range findAll(cells[1], "a") {
					grant, err := parseGrant(nodeText(link))
					if err != nil {
						return entities.Weapon{}, errors.Wrapf(err, "weapon %q", weapon.Name)
					}
					weapon.Talents = append(weapon.Talents, grant)
				}
			}
		}
		return weapon, nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(weapons, func(i, j int) bool { return weapons[i].Name < weapons[j].Name })
	slog.InfoContext(ctx, "Fetched weapons", "count", len(weapons))
	return &ListWeaponsOutput{Weapons: weapons}, nil
}
