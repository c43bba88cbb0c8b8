package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// PageSize is the number of objects requested per page.
const PageSize = 100

// PaginatedCollection lazily walks the pages of a paginated query. Two
// paging modes exist: offset queries carry the "skip: %d first: %d"
// printf placeholders in their text, cursor queries declare $from and
// $first variables and report the next cursor in their response. The
// dereference path locates the object array inside the response body.
type PaginatedCollection struct {
	client     *Client
	query      string
	vars       map[string]any
	path       []string
	cursorPath []string

	page   int
	cursor string
	buffer []json.RawMessage
	index  int
	done   bool
}

// NewPaginatedCollection wraps an offset-paginated query. Items are
// fetched on demand through Next.
func NewPaginatedCollection(c *Client, query string, vars map[string]any, path []string) *PaginatedCollection {
	return &PaginatedCollection{
		client: c,
		query:  query,
		vars:   vars,
		path:   path,
	}
}

// NewCursorCollection wraps a cursor-paginated query. cursorPath
// locates the end cursor inside the response body; a null cursor ends
// the collection.
func NewCursorCollection(c *Client, query string, vars map[string]any, path, cursorPath []string) *PaginatedCollection {
	return &PaginatedCollection{
		client:     c,
		query:      query,
		vars:       vars,
		path:       path,
		cursorPath: cursorPath,
	}
}

// Next returns the next object, fetching the following page when the
// current one is exhausted. The second return value is false once the
// collection is fully consumed.
func (p *PaginatedCollection) Next(ctx context.Context) (json.RawMessage, bool, error) {
	if p.index >= len(p.buffer) {
		if p.done {
			return nil, false, nil
		}
		if err := p.fetchPage(ctx); err != nil {
			return nil, false, err
		}
		if len(p.buffer) == 0 {
			return nil, false, nil
		}
	}
	item := p.buffer[p.index]
	p.index++
	return item, true, nil
}

func (p *PaginatedCollection) fetchPage(ctx context.Context) error {
	if p.cursorPath != nil {
		return p.fetchCursorPage(ctx)
	}
	text := fmt.Sprintf(p.query, p.page*PageSize, PageSize)
	data, err := p.client.Execute(ctx, text, p.vars)
	if err != nil {
		return errors.Wrapf(err, "fetch page %d", p.page)
	}
	items, err := dereference(data, p.path)
	if err != nil {
		return errors.Wrapf(err, "page %d", p.page)
	}
	p.buffer = items
	p.index = 0
	p.page++
	if len(items) < PageSize {
		p.done = true
	}
	return nil
}

// fetchCursorPage sends the query text untouched and binds $first and,
// past the first page, $from. The server decides termination by
// returning a null end cursor.
func (p *PaginatedCollection) fetchCursorPage(ctx context.Context) error {
	vars := make(map[string]any, len(p.vars)+2)
	for k, v := range p.vars {
		vars[k] = v
	}
	vars["first"] = PageSize
	if p.cursor != "" {
		vars["from"] = p.cursor
	}
	data, err := p.client.Execute(ctx, p.query, vars)
	if err != nil {
		return errors.Wrapf(err, "fetch page %d", p.page)
	}
	items, err := dereference(data, p.path)
	if err != nil {
		return errors.Wrapf(err, "page %d", p.page)
	}
	cursor, err := dereferenceCursor(data, p.cursorPath)
	if err != nil {
		return errors.Wrapf(err, "page %d", p.page)
	}
	p.buffer = items
	p.index = 0
	p.page++
	p.cursor = cursor
	if cursor == "" {
		p.done = true
	}
	return nil
}

// dereference walks the path of selection names down to the object array.
func dereference(data map[string]json.RawMessage, path []string) ([]json.RawMessage, error) {
	current, last, err := walkObjects(data, path)
	if err != nil {
		return nil, err
	}
	raw, ok := current[last]
	if !ok {
		return nil, errors.Errorf("response has no %q array", last)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %q array", last)
	}
	return items, nil
}

// dereferenceCursor walks the path down to the end cursor. A JSON null
// cursor comes back as "".
func dereferenceCursor(data map[string]json.RawMessage, path []string) (string, error) {
	current, last, err := walkObjects(data, path)
	if err != nil {
		return "", err
	}
	raw, ok := current[last]
	if !ok {
		return "", errors.Errorf("response has no %q cursor", last)
	}
	var cursor *string
	if err := json.Unmarshal(raw, &cursor); err != nil {
		return "", errors.Wrapf(err, "decode %q cursor", last)
	}
	if cursor == nil {
		return "", nil
	}
	return *cursor, nil
}

// walkObjects descends through all but the last path element, returning
// the innermost object and the remaining key.
func walkObjects(data map[string]json.RawMessage, path []string) (map[string]json.RawMessage, string, error) {
	if len(path) == 0 {
		return nil, "", errors.New("empty dereference path")
	}
	current := data
	for _, key := range path[:len(path)-1] {
		raw, ok := current[key]
		if !ok {
			return nil, "", errors.Errorf("response has no %q object", key)
		}
		next := map[string]json.RawMessage{}
		if err := json.Unmarshal(raw, &next); err != nil {
			return nil, "", errors.Wrapf(err, "decode %q object", key)
		}
		current = next
	}
	return current, path[len(path)-1], nil
}
