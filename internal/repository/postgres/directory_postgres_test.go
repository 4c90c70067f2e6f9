package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubuntuhub/internal/model"
	"ubuntuhub/internal/repository"
)

var (
	businessCols     = []string{"id", "organization_id", "name", "description", "category", "contact_email", "phone", "website", "address", "created_at", "updated_at"}
	businessCardCols = []string{"id", "business_id", "headline", "body", "link_url", "created_at"}
	groupCols        = []string{"id", "organization_id", "name", "description", "is_private", "created_at", "updated_at"}
	planCols         = []string{"id", "organization_id", "name", "description", "price_cents", "billing_period", "created_at", "updated_at"}
)

func TestBusinessPostgres_Create(t *testing.T) {
	now := time.Now().UTC()
	b := &model.Business{ID: "biz-1", OrganizationID: "org-1", Name: "Mama's Spaza", Category: "grocery", CreatedAt: now, UpdatedAt: now}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO businesses").
			WithArgs(b.ID, b.OrganizationID, b.Name, "", "grocery", "", "", "", "", now, now).
			WillReturnRows(sqlmock.NewRows(businessCols).AddRow(b.ID, b.OrganizationID, b.Name, "", "grocery", "", "", "", "", now, now))

		got, err := NewBusinessPostgres(db).Create(context.Background(), b)

		assert.NoError(t, err)
		assert.Equal(t, "grocery", got.Category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown organization", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO businesses").
			WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err = NewBusinessPostgres(db).Create(context.Background(), b)

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestBusinessPostgres_UpdateDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBusinessPostgres(db)
	now := time.Now().UTC()

	mock.ExpectQuery("UPDATE businesses").
		WithArgs("missing", "Shop", "", "", "", "", "", "", now).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("DELETE FROM businesses WHERE id = ?").
		WithArgs("biz-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM businesses WHERE id = ?").
		WithArgs("biz-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repo.Update(context.Background(), &model.Business{ID: "missing", Name: "Shop", UpdatedAt: now})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, repo.Delete(context.Background(), "biz-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "biz-1"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessCardPostgres_ListByBusiness(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM business_cards WHERE business_id = ?").
		WithArgs("biz-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM business_cards WHERE business_id = (.+) ORDER BY created_at DESC").
		WithArgs("biz-1", 10, 0).
		WillReturnRows(sqlmock.NewRows(businessCardCols).AddRow("card-1", "biz-1", "Fresh bread daily", "", "", now))

	res, err := NewBusinessCardPostgres(db).ListByBusiness(context.Background(), "biz-1", repository.PageQuery{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "Fresh bread daily", res.Items[0].Headline)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessCardPostgres_Create_UnknownBusiness(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO business_cards").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err = NewBusinessCardPostgres(db).Create(context.Background(), &model.BusinessCard{ID: "card-1", BusinessID: "gone"})

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupPostgres_Create(t *testing.T) {
	now := time.Now().UTC()
	g := &model.Group{ID: "grp-1", OrganizationID: "org-1", Name: "Gardeners", IsPrivate: true, CreatedAt: now, UpdatedAt: now}

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "unknown organization", err: &pgconn.PgError{Code: "23503"}, wantErr: sql.ErrNoRows},
		{name: "name taken", err: &pgconn.PgError{Code: "23505"}, wantErr: repository.ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery("INSERT INTO groups").
				WithArgs(g.ID, g.OrganizationID, g.Name, "", true, now, now).
				WillReturnError(tt.err)

			got, err := NewGroupPostgres(db).Create(context.Background(), g)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO groups").
			WillReturnRows(sqlmock.NewRows(groupCols).AddRow(g.ID, g.OrganizationID, g.Name, "", true, now, now))

		got, err := NewGroupPostgres(db).Create(context.Background(), g)

		require.NoError(t, err)
		assert.True(t, got.IsPrivate)
	})
}

func TestMembershipPlanPostgres_ListByOrganization(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM membership_plans WHERE organization_id = ?").
		WithArgs("org-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT (.+) FROM membership_plans WHERE organization_id = (.+) ORDER BY price_cents ASC").
		WithArgs("org-1", 10, 0).
		WillReturnRows(sqlmock.NewRows(planCols).
			AddRow("plan-1", "org-1", "Friend", "", int64(0), "once", now, now).
			AddRow("plan-2", "org-1", "Member", "", int64(5000), "monthly", now, now))

	res, err := NewMembershipPlanPostgres(db).ListByOrganization(context.Background(), "org-1", repository.PageQuery{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, model.BillingMonthly, res.Items[1].BillingPeriod)
	assert.Equal(t, int64(5000), res.Items[1].PriceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}
