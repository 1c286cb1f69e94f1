// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	// helper: ensure collection exists (with truthful logging) and then validator (if provided)
	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			// DocumentDB or other deployments may not support collMod/validators.
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	// Account collections
	ensure("students", studentsSchema())
	ensure("universities", universitiesSchema())
	ensure("admin_accounts", adminAccountsSchema())

	// University-owned records
	ensure("campuses", campusesSchema())
	ensure("departments", departmentsSchema())
	ensure("faculty", facultySchema())
	ensure("programs", programsSchema())

	ensure("admins", adminsSchema())
	ensure("audit_log", auditLogSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
// Uses ListCollectionNames to avoid "created collection" log when it didn't.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

var (
	nonBlank = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}
	str      = bson.M{"bsonType": "string"}
	date     = bson.M{"bsonType": "date"}
	oid      = bson.M{"bsonType": "objectId"}
	year     = bson.M{"bsonType": bson.A{"int", "long"}}
	strList  = bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}}
)

func schema(required bson.A, props bson.M) bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":   "object",
			"required":   required,
			"properties": props,
		},
	}
}

func studentsSchema() bson.M {
	return schema(
		bson.A{"full_name", "email", "password_hash", "created_at"},
		bson.M{
			"full_name":          nonBlank,
			"email":              nonBlank,
			"password_hash":      nonBlank,
			"dob":                date,
			"applied_university": str,
			"matric_year":        year,
			"inter_year":         year,
			"bachelor_year":      year,
			"master_year":        year,
			"matric_subjects":    strList,
			"inter_subjects":     strList,
			"bachelor_major":     strList,
			"master_major":       strList,
			"created_at":         date,
			"updated_at":         date,
		},
	)
}

func universitiesSchema() bson.M {
	return schema(
		bson.A{"name", "email", "password_hash", "contact_person", "address", "created_at"},
		bson.M{
			"name":           nonBlank,
			"email":          nonBlank,
			"password_hash":  nonBlank,
			"contact_person": nonBlank,
			"address":        nonBlank,
			"website":        str,
			"description":    str,
			"created_at":     date,
		},
	)
}

func adminAccountsSchema() bson.M {
	return schema(
		bson.A{"full_name", "email", "password_hash", "created_at"},
		bson.M{
			"full_name":     nonBlank,
			"email":         nonBlank,
			"password_hash": nonBlank,
			"created_at":    date,
		},
	)
}

func campusesSchema() bson.M {
	return schema(
		bson.A{"university_id", "name", "address", "contact"},
		bson.M{
			"university_id": oid,
			"name":          nonBlank,
			"address":       nonBlank,
			"contact":       nonBlank,
			"created_at":    date,
		},
	)
}

func departmentsSchema() bson.M {
	return schema(
		bson.A{"university_id", "name", "campus"},
		bson.M{
			"university_id": oid,
			"name":          nonBlank,
			"campus":        nonBlank,
			"description":   str,
			"created_at":    date,
		},
	)
}

func facultySchema() bson.M {
	return schema(
		bson.A{"university_id", "name", "designation", "campus", "department", "email"},
		bson.M{
			"university_id": oid,
			"name":          nonBlank,
			"designation":   nonBlank,
			"campus":        nonBlank,
			"department":    nonBlank,
			"email":         nonBlank,
			"created_at":    date,
		},
	)
}

func programsSchema() bson.M {
	return schema(
		bson.A{"university_id", "title", "campus", "department", "duration", "fees"},
		bson.M{
			"university_id": oid,
			"title":         nonBlank,
			"campus":        nonBlank,
			"department":    nonBlank,
			"duration":      nonBlank,
			"fees":          nonBlank,
			"description":   str,
			"created_at":    date,
		},
	)
}

func adminsSchema() bson.M {
	return schema(
		bson.A{"name", "description"},
		bson.M{
			"name":        nonBlank,
			"description": nonBlank,
			"created_at":  date,
		},
	)
}

func auditLogSchema() bson.M {
	return schema(
		bson.A{"timestamp", "category", "event_type"},
		bson.M{
			"timestamp":  date,
			"category":   bson.M{"enum": bson.A{"auth", "admin"}},
			"event_type": nonBlank,
		},
	)
}
