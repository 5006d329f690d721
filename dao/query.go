package dao

// sortClause 把用户提交的排序参数净化成 "field DIR" 子句。
// 字段不在白名单内时静默回落到默认字段，方向只认 ASC，其余一律 DESC。
func sortClause(field string, allowed map[string]bool, fallback, order string) string {
	if !allowed[field] {
		field = fallback
	}
	dir := "DESC"
	if order == "ASC" {
		dir = "ASC"
	}
	return field + " " + dir
}

// pageOffset 第 page 页（从 1 起）对应的偏移量
func pageOffset(page, limit int) int {
	return (page - 1) * limit
}
