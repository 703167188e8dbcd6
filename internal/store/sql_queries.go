package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-study-sync/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"user_id", "login", "password_hash", "created_at"}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("login", "password_hash").
		Values(user.Login, user.PasswordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserByLoginQuery(login string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"login": login}).
		ToSql()
}

// buildUpsertDomainQuery builds the last-writer-wins upsert of one domain
// blob. The statement returns the stored updated_at.
func buildUpsertDomainQuery(record models.DomainRecord) (string, []any, error) {
	return psql.
		Insert(models.DomainRecord{}.TableName()).
		Columns("user_id", "domain_id", "payload", "updated_at").
		Values(record.UserID, record.DomainID, string(record.Payload), sq.Expr("NOW()")).
		Suffix("ON CONFLICT (user_id, domain_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at RETURNING updated_at").
		ToSql()
}

func buildGetDomainQuery(userID int64, domainID string) (string, []any, error) {
	return psql.
		Select("user_id", "domain_id", "payload", "updated_at").
		From(models.DomainRecord{}.TableName()).
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"domain_id": domainID},
		}).
		ToSql()
}
