package trello

// ResourceNames lists the well-known top-level Trello resources. The named
// wrapper methods on Client cover exactly this list; anything newer or more
// obscure remains reachable through Resource with an arbitrary name.
var ResourceNames = []string{
	"actions",
	"batch",
	"boards",
	"cards",
	"checklists",
	"enterprises",
	"labels",
	"lists",
	"members",
	"notifications",
	"organizations",
	"search",
	"tokens",
	"types",
	"webhooks",
}
