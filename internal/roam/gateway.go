package roam

import (
	"context"
	"fmt"
	"strings"

	"github.com/roamkit/roam-mcp/internal/roamerr"
)

type blockLocation struct {
	ParentUID string `json:"parent-uid"`
	Order     string `json:"order"`
}

type blockPayload struct {
	String string `json:"string"`
	UID    string `json:"uid"`
}

type createBlockRequest struct {
	Action   string        `json:"action"`
	Location blockLocation `json:"location"`
	Block    blockPayload  `json:"block"`
}

type pagePayload struct {
	Title string `json:"title"`
	UID   string `json:"uid"`
}

type createPageRequest struct {
	Action string      `json:"action"`
	Page   pagePayload `json:"page"`
}

// requireArg rejects blank operation arguments before any network call.
func requireArg(value, name string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", roamerr.Validationf("%s cannot be empty", name)
	}
	return trimmed, nil
}

// PageContent returns the rendered block content of the named page, newest
// edit first. A page with no blocks, including a page that does not exist,
// yields an empty result rather than an error: the query legitimately
// returns an empty relation for both.
func (c *Client) PageContent(ctx context.Context, title string) ([]BlockContent, error) {
	title, err := requireArg(title, "page title")
	if err != nil {
		return nil, err
	}

	resp, err := c.runQuery(ctx, pageContentQuery(), title)
	if err != nil {
		return nil, err
	}

	rows, err := decodePulledRows(resp.Result)
	if err != nil {
		return nil, err
	}
	sortByEditTimeDesc(rows)

	blocks := make([]BlockContent, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, BlockContent{
			Content:  renderBlockTree(row.Block),
			EditTime: row.Time,
		})
	}
	return blocks, nil
}

// PageReferences returns blocks that directly reference the named page
// (one :block/refs hop; titles match exactly and case-sensitively), newest
// edit first. The result set is relayed as the graph reports it, capped at
// limit entries; when more exist, NextCursor holds the edit time to pass
// back for the next page. A non-positive limit uses the configured default.
func (c *Client) PageReferences(ctx context.Context, title string, limit int, cursor *int64) (*ReferencePage, error) {
	title, err := requireArg(title, "page title")
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = c.cfg.ReferencePageSize
	}

	var resp *queryResponse
	if cursor != nil {
		resp, err = c.runQuery(ctx, referencesQuery(true), title, *cursor)
	} else {
		resp, err = c.runQuery(ctx, referencesQuery(false), title)
	}
	if err != nil {
		return nil, err
	}

	rows, err := decodePulledRows(resp.Result)
	if err != nil {
		return nil, err
	}
	sortByEditTimeDesc(rows)

	page := &ReferencePage{Results: make([]BlockContent, 0, min(limit, len(rows)))}
	for i, row := range rows {
		if i >= limit {
			break
		}
		page.Results = append(page.Results, BlockContent{
			Content:  renderBlockTree(row.Block),
			EditTime: row.Time,
		})
	}

	if len(rows) > limit && len(page.Results) > 0 {
		next := page.Results[len(page.Results)-1].EditTime
		page.NextCursor = &next
	}
	return page, nil
}

// AppendToPage appends content as the last block of the named page and
// returns the new block's UID. A missing page is a not-found error unless
// the gateway is configured to create missing pages.
func (c *Client) AppendToPage(ctx context.Context, title, content string) (string, error) {
	title, err := requireArg(title, "page title")
	if err != nil {
		return "", err
	}
	content, err = requireArg(content, "block content")
	if err != nil {
		return "", err
	}

	resp, err := c.runQuery(ctx, pageUIDQuery, title)
	if err != nil {
		return "", err
	}
	uids, err := decodeScalarRows(resp.Result)
	if err != nil {
		return "", err
	}

	var pageUID string
	switch {
	case len(uids) > 0:
		pageUID = uids[0]
	case c.cfg.CreateMissingPages:
		pageUID = c.uid()
		if err := c.createPage(ctx, title, pageUID); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("page %q: %w", title, roamerr.ErrPageNotFound)
	}

	return c.appendBlock(ctx, pageUID, content)
}

// AppendToToday appends content as the last block of today's daily page,
// creating the page first if it does not exist, and returns the new
// block's UID.
func (c *Client) AppendToToday(ctx context.Context, content string) (string, error) {
	content, err := requireArg(content, "block content")
	if err != nil {
		return "", err
	}

	now := c.now()
	pageUID := dailyPageUID(now)

	resp, err := c.runQuery(ctx, entityByUIDQuery, pageUID)
	if err != nil {
		return "", err
	}
	if len(resp.Result) == 0 {
		if err := c.createPage(ctx, dailyPageTitle(now), pageUID); err != nil {
			return "", err
		}
	}

	return c.appendBlock(ctx, pageUID, content)
}

// createPage creates a page with the given title and UID.
func (c *Client) createPage(ctx context.Context, title, uid string) error {
	return c.post(ctx, c.writeEndpoint(), createPageRequest{
		Action: "create-page",
		Page:   pagePayload{Title: title, UID: uid},
	}, nil)
}

// appendBlock creates a new block as the last child of the given parent
// and returns its UID.
func (c *Client) appendBlock(ctx context.Context, parentUID, content string) (string, error) {
	uid := c.uid()
	err := c.post(ctx, c.writeEndpoint(), createBlockRequest{
		Action:   "create-block",
		Location: blockLocation{ParentUID: parentUID, Order: "last"},
		Block:    blockPayload{String: content, UID: uid},
	}, nil)
	if err != nil {
		return "", err
	}
	return uid, nil
}
