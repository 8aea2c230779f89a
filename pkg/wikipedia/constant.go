package wikipedia

import "time"

const (
	DefaultBaseURL            = "https://en.wikipedia.org/w/api.php"
	DefaultTopKResults        = 1
	DefaultDocContentCharsMax = 200
	DefaultTimeout            = 15 * time.Second

	// NoResultText is what Run returns when nothing matched.
	NoResultText = "No good Wikipedia Search Result was found"

	// maxQueryLength is the longest search string MediaWiki accepts.
	maxQueryLength = 300
	userAgent      = "chat-with-search/1.0"
)
