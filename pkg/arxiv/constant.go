package arxiv

import "time"

const (
	DefaultBaseURL            = "http://export.arxiv.org/api/query"
	DefaultTopKResults        = 1
	DefaultDocContentCharsMax = 200
	DefaultTimeout            = 15 * time.Second

	// NoResultText is what Run returns when nothing matched.
	NoResultText = "No good Arxiv Result was found"

	// maxQueryLength caps the query sent to the export API.
	maxQueryLength = 300
)
