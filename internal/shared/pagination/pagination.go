package pagination

import (
	"errors"
	"strconv"
	"strings"
)

// PerPage là số posts trên một trang listing
const PerPage = 10

// Window là kết quả resolve tham số ?page= trước khi query DB
type Window struct {
	Number   int
	NumPages int
	Offset   int
	Limit    int
}

// Resolve chuẩn hóa số trang:
//   - thiếu hoặc không phải số nguyên → trang 1
//   - < 1, > num_pages hoặc tràn int → trang cuối
//
// Khoảng trắng hai đầu được bỏ qua.
//
// NumPages luôn >= 1, kể cả khi total = 0.
func Resolve(raw string, total, perPage int) Window {
	if perPage <= 0 {
		perPage = PerPage
	}

	numPages := 1
	if total > 0 {
		numPages = (total + perPage - 1) / perPage
	}

	number, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case errors.Is(err, strconv.ErrRange):
		number = numPages
	case err != nil:
		number = 1
	case number < 1 || number > numPages:
		number = numPages
	}

	return Window{
		Number:   number,
		NumPages: numPages,
		Offset:   (number - 1) * perPage,
		Limit:    perPage,
	}
}

// Page là một trang kết quả kèm thông tin điều hướng cho template
type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Total    int
}

func NewPage[T any](items []T, w Window, total int) *Page[T] {
	return &Page[T]{
		Items:    items,
		Number:   w.Number,
		NumPages: w.NumPages,
		Total:    total,
	}
}

func (p *Page[T]) HasNext() bool     { return p.Number < p.NumPages }
func (p *Page[T]) HasPrevious() bool { return p.Number > 1 }
func (p *Page[T]) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

func (p *Page[T]) NextNumber() int     { return p.Number + 1 }
func (p *Page[T]) PreviousNumber() int { return p.Number - 1 }

// PageRange trả về 1..NumPages cho thanh điều hướng
func (p *Page[T]) PageRange() []int {
	r := make([]int, p.NumPages)
	for i := range r {
		r[i] = i + 1
	}
	return r
}
