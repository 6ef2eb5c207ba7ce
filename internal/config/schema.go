package config

import (
	"errors"
)

// Type is the semantic type of a schema field.
type Type int

const (
	TypeString Type = iota
	TypeURL
	TypeDatabaseURL
	TypePositiveInt
	TypeBasicAuth
)

func (t Type) String() string {
	switch t {
	case TypeURL:
		return "url"
	case TypeDatabaseURL:
		return "database-url"
	case TypePositiveInt:
		return "positive-int"
	case TypeBasicAuth:
		return "basic-auth"
	default:
		return "string"
	}
}

// Consumer names the subsystem a field is distributed to.
type Consumer string

const (
	ConsumerDatabase   Consumer = "database"
	ConsumerWeb        Consumer = "web"
	ConsumerWorkers    Consumer = "workers"
	ConsumerMonitoring Consumer = "monitoring"
)

// Field describes one expected key.
type Field struct {
	Key      string
	Type     Type
	Required bool
	Secret   bool
	Consumer Consumer
}

// Schema is an ordered list of expected keys.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema builds a Schema from fields. A repeated key replaces the earlier
// field.
func NewSchema(fields ...Field) *Schema {
	s := &Schema{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if i, ok := s.index[f.Key]; ok {
			s.fields[i] = f
			continue
		}
		s.index[f.Key] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s
}

// Keys for the deployment's recognised variables.
const (
	KeyPostgresUser      = "POSTGRES_USER"
	KeyPostgresPassword  = "POSTGRES_PASSWORD"
	KeyPostgresDB        = "POSTGRES_DB"
	KeyDatabaseURL       = "DJANGO_DATABASE_URL"
	KeyBaseURL           = "DJANGO_BASE_URL"
	KeySecretKey         = "DJANGO_SECRET_KEY"
	KeyCeleryConcurrency = "CELERY_CONCURRENCY"
	KeyFlowerBasicAuth   = "FLOWER_BASIC_AUTH"
	KeyRedmonBasicAuth   = "REDMON_BASIC_AUTH"
)

// DefaultSchema lists the keys consumed by the database service, the web
// process, the task-queue workers and the monitoring dashboards.
var DefaultSchema = NewSchema(
	Field{Key: KeyPostgresUser, Type: TypeString, Required: true, Consumer: ConsumerDatabase},
	Field{Key: KeyPostgresPassword, Type: TypeString, Required: true, Secret: true, Consumer: ConsumerDatabase},
	Field{Key: KeyPostgresDB, Type: TypeString, Required: true, Consumer: ConsumerDatabase},
	Field{Key: KeyDatabaseURL, Type: TypeDatabaseURL, Required: true, Secret: true, Consumer: ConsumerWeb},
	Field{Key: KeyBaseURL, Type: TypeURL, Required: true, Consumer: ConsumerWeb},
	Field{Key: KeySecretKey, Type: TypeString, Required: true, Secret: true, Consumer: ConsumerWeb},
	Field{Key: KeyCeleryConcurrency, Type: TypePositiveInt, Consumer: ConsumerWorkers},
	Field{Key: KeyFlowerBasicAuth, Type: TypeBasicAuth, Required: true, Secret: true, Consumer: ConsumerMonitoring},
	Field{Key: KeyRedmonBasicAuth, Type: TypeBasicAuth, Required: true, Secret: true, Consumer: ConsumerMonitoring},
)

// Field returns the field declared for key.
func (s *Schema) Field(key string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	i, ok := s.index[key]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)

	return out
}

// Keys returns the declared keys in order.
func (s *Schema) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		keys = append(keys, f.Key)
	}

	return keys
}

// Validate checks that every required field is present and that every
// present field parses as its type. All violations are returned joined with
// [errors.Join]; nil means the set is valid.
func (s *Schema) Validate(set *Set) error {
	var errs []error
	for _, f := range s.fields {
		if _, ok := set.Lookup(f.Key); !ok {
			if f.Required {
				errs = append(errs, &Error{Kind: MissingKey, Key: f.Key})
			}
			continue
		}
		if err := f.check(set); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (f Field) check(set *Set) error {
	var err error
	switch f.Type {
	case TypeURL:
		_, err = set.RequireURL(f.Key)
	case TypeDatabaseURL:
		_, err = set.RequireDatabaseURL(f.Key)
	case TypePositiveInt:
		_, err = set.RequirePositiveInt(f.Key)
	case TypeBasicAuth:
		_, err = set.RequireBasicAuth(f.Key)
	}

	return err
}

// Unknown returns the keys of set that the schema does not declare, in the
// set's order.
func (s *Schema) Unknown(set *Set) []string {
	var unknown []string
	for _, k := range set.Keys() {
		if _, ok := s.Field(k); !ok {
			unknown = append(unknown, k)
		}
	}

	return unknown
}
