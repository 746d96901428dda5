package notion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"internship-engine/internal/tracker"
)

const queryPageSize = 100

var _ tracker.Store = (*Client)(nil)

// Database is a database the integration can see.
type Database struct {
	ID    string
	Title string
}

// FindByLink pages through the database looking for a record whose title
// links to link.
func (c *Client) FindByLink(ctx context.Context, link string) (string, bool, error) {
	target := tracker.NormalizeURL(link)
	req := &notionapi.DatabaseQueryRequest{PageSize: queryPageSize}
	for {
		res, err := c.api.Database.Query(ctx, c.dbID, req)
		if err != nil {
			return "", false, fmt.Errorf("query database: %w", err)
		}
		for _, p := range res.Results {
			title, ok := p.Properties[c.props.Name].(*notionapi.TitleProperty)
			if !ok {
				continue
			}
			if tracker.NormalizeURL(titleLink(title.Title)) == target {
				return string(p.ID), true, nil
			}
		}
		if !res.HasMore || res.NextCursor == "" {
			return "", false, nil
		}
		req.StartCursor = res.NextCursor
	}
}

// titleLink returns the first link found in a title.
func titleLink(title []notionapi.RichText) string {
	for _, rt := range title {
		if rt.Text != nil && rt.Text.Link != nil && rt.Text.Link.Url != "" {
			return strings.TrimSpace(rt.Text.Link.Url)
		}
		if rt.Href != "" {
			return strings.TrimSpace(rt.Href)
		}
	}
	return ""
}

func (c *Client) Create(ctx context.Context, p tracker.Properties) (string, error) {
	props, err := c.properties(p)
	if err != nil {
		return "", err
	}
	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent:     notionapi.Parent{Type: notionapi.ParentTypeDatabaseID, DatabaseID: c.dbID},
		Properties: props,
	})
	if err != nil {
		return "", fmt.Errorf("create page: %w", err)
	}
	return string(page.ID), nil
}

func (c *Client) Update(ctx context.Context, id string, p tracker.Properties) error {
	props, err := c.properties(p)
	if err != nil {
		return err
	}
	if _, err := c.api.Page.Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{Properties: props}); err != nil {
		return fmt.Errorf("update page %s: %w", id, err)
	}
	return nil
}

func (c *Client) properties(p tracker.Properties) (notionapi.Properties, error) {
	day, err := time.Parse(time.DateOnly, p.DateApplied)
	if err != nil {
		return nil, fmt.Errorf("date applied %q: %w", p.DateApplied, err)
	}
	start := notionapi.Date(day)

	name := &notionapi.Text{Content: p.Name}
	if p.Link != "" {
		name.Link = &notionapi.Link{Url: p.Link}
	}
	return notionapi.Properties{
		c.props.Name: &notionapi.TitleProperty{
			Type:  notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{{Text: name}},
		},
		c.props.Role: &notionapi.RichTextProperty{
			Type:     notionapi.PropertyTypeRichText,
			RichText: []notionapi.RichText{{Text: &notionapi.Text{Content: p.Role}}},
		},
		c.props.DateApplied: &notionapi.DateProperty{
			Type: notionapi.PropertyTypeDate,
			Date: &notionapi.DateObject{Start: &start},
		},
		c.props.Status: &notionapi.SelectProperty{
			Type:   notionapi.PropertyTypeSelect,
			Select: notionapi.Option{Name: p.Status},
		},
	}, nil
}

// ListDatabases returns up to ten databases shared with the integration.
func (c *Client) ListDatabases(ctx context.Context) ([]Database, error) {
	res, err := c.api.Search.Do(ctx, &notionapi.SearchRequest{
		Filter:   notionapi.SearchFilter{Value: "database", Property: "object"},
		PageSize: 10,
	})
	if err != nil {
		return nil, err
	}

	out := make([]Database, 0, len(res.Results))
	for _, obj := range res.Results {
		db, ok := obj.(*notionapi.Database)
		if !ok {
			continue
		}
		var title strings.Builder
		for _, t := range db.Title {
			title.WriteString(t.PlainText)
		}
		out = append(out, Database{ID: string(db.ID), Title: title.String()})
	}
	return out, nil
}
