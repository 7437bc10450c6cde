package utils

import (
	"database/sql"
	"fmt"
	"reflect"
)

// ScanStructByDBTags scans a single row into dest following the order of
// the struct's db-tagged fields. Queries must select columns in struct
// field order.
func ScanStructByDBTags(row *sql.Row, dest any) error {
	targets, err := scanTargets(dest)
	if err != nil {
		return err
	}

	return row.Scan(targets...)
}

// ScanStructByDBTagsForRows is the *sql.Rows variant of ScanStructByDBTags.
func ScanStructByDBTagsForRows(rows *sql.Rows, dest any) error {
	targets, err := scanTargets(dest)
	if err != nil {
		return err
	}

	return rows.Scan(targets...)
}

func scanTargets(dest any) ([]any, error) {
	value := reflect.ValueOf(dest)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return nil, fmt.Errorf("scan destination must be a non-nil struct pointer")
	}

	elem := value.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("scan destination must point to a struct")
	}

	structType := elem.Type()
	targets := make([]any, 0, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		tag := structType.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		targets = append(targets, elem.Field(i).Addr().Interface())
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("scan destination has no db-tagged fields")
	}

	return targets, nil
}
