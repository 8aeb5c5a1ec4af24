// file: dto/category.go
package dto

// CategoryReq 组别创建/更新请求，BibStart/BibEnd 成对出现或都省略
type CategoryReq struct {
	Title    string `json:"title" binding:"required"`
	IsActive *bool  `json:"is_active"`
	BibStart *uint  `json:"bib_start"`
	BibEnd   *uint  `json:"bib_end"`
}
