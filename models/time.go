package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ISOTime is a timestamp persisted as an ISO-8601 string. Documents written
// by earlier tooling may carry native BSON datetimes instead, so both are
// accepted on read.
type ISOTime struct {
	time.Time
}

func Now() ISOTime {
	return ISOTime{time.Now().UTC()}
}

func (t ISOTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.UTC().Format(time.RFC3339Nano))
}

func (t *ISOTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.String:
		parsed, err := time.Parse(time.RFC3339Nano, rv.StringValue())
		if err != nil {
			return err
		}
		t.Time = parsed.UTC()
		return nil
	case bsontype.DateTime:
		t.Time = rv.Time().UTC()
		return nil
	}
	return fmt.Errorf("cannot decode %s into a timestamp", bt)
}
