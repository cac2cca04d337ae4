// Package prompts contains the description strings for the notebook tools.
package prompts

const (
	// GetPageContentToolDoc describes the get_page_content tool.
	GetPageContentToolDoc = `Get the content of a specific page in Roam Research, including nested child blocks.

Returns the page's blocks as markdown, newest-edited first. [[Page]] links are rewritten as markdown links and child blocks are indented beneath their parents. A page with no blocks returns an empty result.

Args:
- page_name: Name of the page to retrieve (exact, case-sensitive title)`

	// GetPageReferencesToolDoc describes the get_page_references tool.
	GetPageReferencesToolDoc = `Get blocks that reference a specific page in Roam Research, with pagination support.

Only direct references are returned (blocks whose content links the page), newest-edited first. When more results exist than the limit, the response carries a next_cursor; pass it back as cursor to fetch the next page.

Args:
- page_name: Name of the page to get references for (exact, case-sensitive title)
- limit: Maximum number of results to return (optional, default 10)
- cursor: Edit-time cursor from a previous response (optional)`

	// WriteToPageToolDoc describes the write_to_page tool.
	WriteToPageToolDoc = `Write content to a specific page in Roam Research.

Appends the content as a new block at the end of the page and returns the new block's identifier. If the page does not exist the call fails, unless the server is configured to create missing pages.

Args:
- page_name: Name of the page to write to
- content: Content to write as a new block`

	// WriteToTodayToolDoc describes the write_to_today tool.
	WriteToTodayToolDoc = `Write content to today's daily page in Roam Research.

Resolves today's daily page, creating it if it does not exist yet, appends the content as a new block at the end, and returns the new block's identifier.

Args:
- content: Content to write as a new block`
)
