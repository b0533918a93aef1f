package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/mstepanov/evreg/internal/migrations"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Run(context.Background(), db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func createUser(t *testing.T, db *sqlx.DB, uid int64, username, email string) *models.UserDB {
	t.Helper()

	writeRepo := NewUserWriteRepository(db, nil)
	user, err := writeRepo.Create(context.Background(), uid, username, email, "hash", time.Now())
	require.NoError(t, err)
	return user
}

func TestUserRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewUserReadRepository(db)

	createUser(t, db, 123456, "alice", "alice@example.com")
	createUser(t, db, 234567, "bob", "bob@example.com")

	t.Run("GetByUID", func(t *testing.T) {
		user, err := readRepo.GetByUID(ctx, 123456)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.False(t, user.IsAdmin)
	})

	t.Run("GetByUID missing returns nil", func(t *testing.T) {
		user, err := readRepo.GetByUID(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByUsernameOrEmail", func(t *testing.T) {
		username := "alice"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(123456), user.UID)

		email := "bob@example.com"
		user, err = readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(234567), user.UID)

		ghost := "ghost"
		user, err = readRepo.GetByUsernameOrEmail(ctx, &ghost, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ExistsByUID", func(t *testing.T) {
		exists, err := readRepo.ExistsByUID(ctx, 123456)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = readRepo.ExistsByUID(ctx, 999999)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("List with total", func(t *testing.T) {
		users, total, err := readRepo.List(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, users, 1)
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		writeRepo := NewUserWriteRepository(db, nil)
		bio := "Gopher"
		user, err := writeRepo.UpdateProfile(ctx, 123456, "alice2", &bio, nil, nil, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "alice2", user.Username)
		assert.Equal(t, "Gopher", *user.Bio)
	})
}

func TestVerificationCodeRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewVerificationCodeRepository(db, nil)

	email := "alice@example.com"
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("missing returns nil", func(t *testing.T) {
		vc, err := repo.Get(ctx, email, models.CodeTypeRegister)
		assert.NoError(t, err)
		assert.Nil(t, vc)
	})

	t.Run("upsert overwrites per email and type", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, email, models.CodeTypeRegister, "111111", now.Add(5*time.Minute), now))
		require.NoError(t, repo.Upsert(ctx, email, models.CodeTypeReset, "222222", now.Add(5*time.Minute), now))
		require.NoError(t, repo.Upsert(ctx, email, models.CodeTypeRegister, "333333", now.Add(5*time.Minute), now))

		vc, err := repo.Get(ctx, email, models.CodeTypeRegister)
		require.NoError(t, err)
		require.NotNil(t, vc)
		assert.Equal(t, "333333", vc.Code)

		vc, err = repo.Get(ctx, email, models.CodeTypeReset)
		require.NoError(t, err)
		require.NotNil(t, vc)
		assert.Equal(t, "222222", vc.Code)
	})

	t.Run("delete consumes the code", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, email, models.CodeTypeRegister))

		vc, err := repo.Get(ctx, email, models.CodeTypeRegister)
		assert.NoError(t, err)
		assert.Nil(t, vc)
	})
}

func TestAttachmentRepository_ClaimProtocol(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	createUser(t, db, 123456, "alice", "alice@example.com")

	attRepo := NewAttachmentRepository(db, nil)
	regRepo := NewRegistrationWriteRepository(db, nil)
	projRepo := NewProjectWriteRepository(db, nil)

	reg, err := regRepo.Create(ctx, 123456, nil)
	require.NoError(t, err)

	proj, err := projRepo.Create(ctx, 123456, "Demo", "A demo project", nil, nil)
	require.NoError(t, err)

	att, err := attRepo.Create(ctx, 123456, "/static/123456_project/a.png", "a.png", "photo.png", "image/png")
	require.NoError(t, err)
	assert.Nil(t, att.ProjectID)
	assert.Nil(t, att.RegistrationID)

	t.Run("first claim wins", func(t *testing.T) {
		rows, err := attRepo.ClaimForProject(ctx, att.ID, 123456, proj.ProjectID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("second claim affects zero rows", func(t *testing.T) {
		rows, err := attRepo.ClaimForRegistration(ctx, att.ID, 123456, reg.RegistrationID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		// The losing claim must not have touched the row.
		got, err := attRepo.GetByID(ctx, att.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ProjectID)
		assert.Equal(t, proj.ProjectID, *got.ProjectID)
		assert.Nil(t, got.RegistrationID)
	})

	t.Run("claim by non-uploader affects zero rows", func(t *testing.T) {
		createUser(t, db, 234567, "bob", "bob@example.com")
		other, err := attRepo.Create(ctx, 123456, "/static/123456_project/b.png", "b.png", "photo2.png", "image/png")
		require.NoError(t, err)

		rows, err := attRepo.ClaimForProject(ctx, other.ID, 234567, proj.ProjectID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("list by parent", func(t *testing.T) {
		atts, err := attRepo.ListByProjectID(ctx, proj.ProjectID)
		require.NoError(t, err)
		assert.Len(t, atts, 1)

		atts, err = attRepo.ListByRegistrationID(ctx, reg.RegistrationID)
		require.NoError(t, err)
		assert.Len(t, atts, 0)
	})
}

func TestRegistrationRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	createUser(t, db, 123456, "alice", "alice@example.com")
	createUser(t, db, 234567, "bob", "bob@example.com")

	readRepo := NewRegistrationReadRepository(db, nil)
	writeRepo := NewRegistrationWriteRepository(db, nil)

	note := "first"
	reg, err := writeRepo.Create(ctx, 123456, &note)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reg.Status)

	t.Run("unique per user", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, 123456, nil)
		assert.Error(t, err)
	})

	t.Run("status filter and totals", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, 234567, nil)
		require.NoError(t, err)

		updated, err := writeRepo.UpdateStatus(ctx, reg.RegistrationID, models.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, updated.Status)

		approved := models.StatusApproved
		regs, total, err := readRepo.List(ctx, &approved, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, regs, 1)
		assert.Equal(t, reg.RegistrationID, regs[0].RegistrationID)

		regs, total, err = readRepo.List(ctx, nil, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, regs, 2)
	})

	t.Run("update missing returns nil", func(t *testing.T) {
		updated, err := writeRepo.UpdateStatus(ctx, 9999, models.StatusApproved)
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("delete cascades attachments", func(t *testing.T) {
		attRepo := NewAttachmentRepository(db, nil)
		att, err := attRepo.Create(ctx, 123456, "/static/x.png", "x.png", "x.png", "image/png")
		require.NoError(t, err)
		rows, err := attRepo.ClaimForRegistration(ctx, att.ID, 123456, reg.RegistrationID)
		require.NoError(t, err)
		require.Equal(t, int64(1), rows)

		deleted, err := writeRepo.Delete(ctx, reg.RegistrationID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		got, err := attRepo.GetByID(ctx, att.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
