package domain

// Analytics holds campaign reach metrics. No analytics provider is wired
// yet, so values are fixed placeholders.
type Analytics struct {
	Impressions    int64
	Clicks         int64
	Conversions    int64
	EngagementRate string
}

func PlaceholderAnalytics() Analytics {
	return Analytics{Impressions: 1000, Clicks: 100, Conversions: 10, EngagementRate: "10%"}
}
