package model

// Pagination 分页信息，随列表响应返回。
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Response 统一响应信封 {success, data, error, pagination}。
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    string      `json:"details,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// NewPagination 由 total 计算总页数。
func NewPagination(page, limit int, total int64) *Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
