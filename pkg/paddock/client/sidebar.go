package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"pasture/pkg/mapeditor"
)

// ParseSidebar extracts paddocks from the rendered list: every
// .potrero-list-item with a data-potrero-id, a <strong> name and a <small>
// size. Incomplete items are skipped.
func ParseSidebar(r io.Reader, log *zap.Logger) ([]mapeditor.PaddockRecord, error) {
	if log == nil {
		log = zap.NewNop()
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse paddock page: %w", err)
	}
	sel := doc.Find("#potrerosList .potrero-list-item")
	if sel.Length() == 0 {
		sel = doc.Find(".potrero-list-item")
	}

	var out []mapeditor.PaddockRecord
	sel.Each(func(i int, s *goquery.Selection) {
		raw, ok := s.Attr("data-potrero-id")
		if !ok {
			return
		}
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			log.Debug("sidebar item with bad id", zap.Int("index", i), zap.String("id", raw))
			return
		}
		name := strings.TrimSpace(s.Find("strong").First().Text())
		size := s.Find("small").First()
		if name == "" || size.Length() == 0 {
			log.Debug("sidebar item incomplete", zap.Int("index", i))
			return
		}
		ha, _ := parseSize(size.Text())
		out = append(out, mapeditor.PaddockRecord{ID: mapeditor.PaddockID(id), Name: name, Hectares: ha})
	})
	return out, nil
}
