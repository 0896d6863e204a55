package serviceImp

import (
	"context"

	"pasture/pkg/mapeditor"
	"pasture/pkg/paddock/service"
)

type editorSource struct{ s service.PaddockService }

// NewEditorSource lets an in-process editor read and delete paddocks
// without going through HTTP.
func NewEditorSource(s service.PaddockService) mapeditor.PaddockSource { return &editorSource{s} }

func (e *editorSource) List(ctx context.Context) ([]mapeditor.PaddockRecord, error) {
	list, err := e.s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]mapeditor.PaddockRecord, 0, len(list))
	for _, p := range list {
		out = append(out, mapeditor.PaddockRecord{ID: mapeditor.PaddockID(p.ID), Name: p.Name, Hectares: p.Hectares})
	}
	return out, nil
}

func (e *editorSource) Delete(ctx context.Context, id mapeditor.PaddockID) error {
	return e.s.Delete(ctx, uint(id))
}
