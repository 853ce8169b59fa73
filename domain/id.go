package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is the canonical string form of any identifier read from a store.
// ObjectIDs, strings and numbers all collapse to the same representation
// so the scoring code only ever compares plain strings.
type ID string

func NewID(v any) ID {
	switch t := v.(type) {
	case nil:
		return ""
	case ID:
		return t
	case string:
		return ID(strings.TrimSpace(t))
	case primitive.ObjectID:
		return ID(t.Hex())
	case int:
		return ID(strconv.Itoa(t))
	case int32:
		return ID(strconv.FormatInt(int64(t), 10))
	case int64:
		return ID(strconv.FormatInt(t, 10))
	case uint:
		return ID(strconv.FormatUint(uint64(t), 10))
	case uint64:
		return ID(strconv.FormatUint(t, 10))
	case float64:
		return ID(strconv.FormatFloat(t, 'f', -1, 64))
	case fmt.Stringer:
		return ID(t.String())
	default:
		return ID(fmt.Sprint(t))
	}
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalBSONValue lets a document field hold either an ObjectID or a plain value.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Null, bsontype.Undefined:
		*id = ""
	case bsontype.ObjectID:
		*id = NewID(rv.ObjectID())
	case bsontype.String:
		*id = NewID(rv.StringValue())
	case bsontype.Int32:
		*id = NewID(rv.Int32())
	case bsontype.Int64:
		*id = NewID(rv.Int64())
	case bsontype.Double:
		*id = NewID(rv.Double())
	default:
		return fmt.Errorf("unsupported bson type %s for id", t)
	}

	return nil
}
