package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildProductFilter translates the optional category and search parameters
// into a store filter. Category matches exactly; search matches name OR
// description as a case-insensitive substring. Both combine with AND.
// The search text is regex-quoted so the contract stays substring match.
func buildProductFilter(category, search string) bson.M {
	filter := bson.M{}

	if category != "" {
		filter["category"] = category
	}

	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	return filter
}
