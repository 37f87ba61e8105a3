package api

import (
	"github.com/newslens/newslens/app/analysis"
	"github.com/newslens/newslens/app/feed"
)

// ItemCounter reports archive size for the health endpoint. Implemented by
// database.ItemRepository.
type ItemCounter interface {
	GetItemCount() (int, error)
}

type Handler struct {
	news     *feed.Service
	analysis *analysis.Service
	sources  *feed.Sources
	counter  ItemCounter // optional
}

type TextRequest struct {
	Text string `json:"text"`
}

type TitleRewriteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NewsListResponse struct {
	Items []feed.Item `json:"items"`
	Total int         `json:"total"`
}

type TodayResponse struct {
	Date  string      `json:"date"`
	Items []feed.Item `json:"items"`
}

type TrendingResponse struct {
	Topics []feed.Topic `json:"topics"`
}
