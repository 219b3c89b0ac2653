package firestore

import "github.com/sohosai/hyperdashi-client-sub000/pkg/domain/model"

// ItemFromDoc converts a document holding only id and name
func ItemFromDoc(docID string, id int64, name string) *model.Item {
	return fromItemDoc(docID, &itemDoc{ID: id, Name: name})
}

// ColorFromDoc converts a document holding only id and name
func ColorFromDoc(docID string, id int64, name string) model.NamedColor {
	return fromColorDoc(docID, &colorDoc{ID: id, Name: name})
}
