package pagesplit

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Verify 解析生成的页面，检查 nav.<navClass> 中恰好一个 active 链接指向本页，
// 且恰好一个 active 内容 section，其 id 为本页 id。
func Verify(page Page, navClass, sectionClass, activeClass string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Content))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrVerify, page.Entry.Target, err)
	}

	active := doc.Find("nav." + navClass + " a." + NavItemClass + "." + activeClass)
	if active.Length() != 1 {
		return fmt.Errorf("%w: %s has %d active navigation entries", ErrVerify, page.Entry.Target, active.Length())
	}
	if href, _ := active.Attr("href"); href != page.Entry.Target {
		return fmt.Errorf("%w: %s active navigation entry points to %q", ErrVerify, page.Entry.Target, href)
	}

	sections := doc.Find("section." + sectionClass + "." + activeClass)
	if sections.Length() != 1 {
		return fmt.Errorf("%w: %s has %d active sections", ErrVerify, page.Entry.Target, sections.Length())
	}
	if id, _ := sections.Attr("id"); id != page.Entry.ID {
		return fmt.Errorf("%w: %s active section is %q", ErrVerify, page.Entry.Target, id)
	}

	return nil
}
