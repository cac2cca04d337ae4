package roam

import "fmt"

// pullDepth is how many levels of :block/children the read queries pull.
// Deeper nesting is truncated, matching the upstream API's practical limits.
const pullDepth = 5

// childPullSpec builds the nested :block/children pull pattern.
func childPullSpec(depth int) string {
	const attrs = ":block/string :block/uid :edit/time"
	if depth <= 1 {
		return "[" + attrs + "]"
	}
	return "[" + attrs + " {:block/children " + childPullSpec(depth-1) + "}]"
}

// pageContentQuery selects every block on the page named by the ?PAGE
// argument, pulling the block tree and binding its edit time.
func pageContentQuery() string {
	return fmt.Sprintf(`[:find (pull ?block [:block/string :block/uid :edit/time :block/order {:block/children %s}]) ?time
 :in $ ?PAGE
 :where
 [?page :node/title ?PAGE]
 [?block :block/page ?page]
 [?block :edit/time ?time]]`, childPullSpec(pullDepth-1))
}

// referencesQuery selects blocks that directly reference the page named by
// the ?PAGE argument (one :block/refs hop, exact case-sensitive title
// match). With a cursor, only edits older than the cursor time qualify.
func referencesQuery(withCursor bool) string {
	in := "$ ?PAGE"
	where := ""
	if withCursor {
		in = "$ ?PAGE ?cursor-time"
		where = "\n [(< ?time ?cursor-time)]"
	}
	return fmt.Sprintf(`[:find (pull ?ref %s) ?time
 :in %s
 :where
 [?page :node/title ?PAGE]
 [?ref :block/refs ?page]
 [?ref :edit/time ?time]%s]`, childPullSpec(pullDepth), in, where)
}

// pageUIDQuery resolves a page title to its block UID.
const pageUIDQuery = `[:find ?uid
 :in $ ?PAGE
 :where
 [?e :node/title ?PAGE]
 [?e :block/uid ?uid]]`

// entityByUIDQuery checks whether any entity carries the given block UID.
const entityByUIDQuery = `[:find ?e
 :in $ ?UID
 :where
 [?e :block/uid ?UID]]`
