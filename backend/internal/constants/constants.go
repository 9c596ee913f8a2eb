package constants

// Agent constants
const (
	// DefaultAgentName is the default agent identifier
	DefaultAgentName = "Latticework"
)

// Agent execution constants
const (
	// MaxRecursionDepth is the maximum depth for recursive agent turns
	// This prevents infinite loops when tools trigger additional tool calls
	MaxRecursionDepth = 5

	// MaxSearchResults caps how many scored matches a search returns
	MaxSearchResults = 5

	// MaxRelatedModels caps the same-category suggestions in a model profile
	MaxRelatedModels = 5
)

// Description caps, in characters. The agent surface keeps more context
// than the graph tooltips can show.
const (
	// DescLimitDisplay is the description cap for the agent and API surface
	DescLimitDisplay = 500

	// DescLimitTooltip is the description cap for graph hover tooltips
	DescLimitTooltip = 150
)

// Fallbacks for records with missing pieces
const (
	// FallbackCategory is assigned when a title carries no category separator
	FallbackCategory = "Misc"

	// FallbackSlug is assigned when a name slugifies to nothing
	FallbackSlug = "untitled"
)
