package mongo

import (
	"go.mongodb.org/mongo-driver/bson"

	"play-economy/pkg/repository"
)

// fieldName maps a document field name to its bson key.
func fieldName(field string) string {
	if field == repository.FieldID {
		return "_id"
	}
	return field
}

// buildFilter translates filters into a bson query. All filters are ANDed.
func buildFilter(filters []repository.Filter) bson.D {
	query := bson.D{}
	for _, f := range filters {
		switch f.Op {
		case repository.OpEq:
			query = append(query, bson.E{Key: fieldName(f.Field), Value: f.Value})
		case repository.OpIn:
			query = append(query, bson.E{Key: fieldName(f.Field), Value: bson.D{{Key: "$in", Value: f.Value}}})
		}
	}
	return query
}

func idFilter(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}
