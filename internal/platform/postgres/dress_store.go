package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/store"
)

// firstImageJoin resolves the cover image (lowest position) of dress d.
const firstImageJoin = `
	LEFT JOIN LATERAL (
		SELECT di.key FROM dress_images di
		WHERE di.dress_id = d.id
		ORDER BY di.position
		LIMIT 1
	) img ON true`

// dressBriefSelect lists dresses with their store, cover image and like data.
// $1 is the viewing user; uuid.Nil never matches so liked is false.
const dressBriefSelect = `
	SELECT d.id, d.name, d.price, d.category, d.created_at,
		s.id, s.name, s.latitude, s.longitude,
		COALESCE(img.key, ''),
		COUNT(l.id),
		COALESCE(BOOL_OR(l.user_id = $1), false)
	FROM dresses d
	JOIN stores s ON s.id = d.store_id` + firstImageJoin + `
	LEFT JOIN dress_likes l ON l.dress_id = d.id`

const dressBriefGroupBy = `
	GROUP BY d.id, s.id, img.key`

// dressOrderBy maps each sort key to a fixed ORDER BY clause. Distance is
// ranked by the caller; the store returns those rows newest first.
var dressOrderBy = map[domain.DressSortBy]string{
	domain.SortRecommend: ` ORDER BY MAX(l.created_at) DESC NULLS LAST, d.created_at DESC, d.id`,
	domain.SortLatest:    ` ORDER BY d.created_at DESC, d.id`,
	domain.SortPriceAsc:  ` ORDER BY d.price ASC, d.created_at DESC, d.id`,
	domain.SortPriceDesc: ` ORDER BY d.price DESC, d.created_at DESC, d.id`,
	domain.SortDistance:  ` ORDER BY d.created_at DESC, d.id`,
}

// PostgresDressStore implements store.DressStore.
type PostgresDressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDressStore creates a catalog reader. If logger is nil, a default logger will be used.
func NewPostgresDressStore(db store.DBTX, logger *slog.Logger) *PostgresDressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresDressStore{
		db:     db,
		logger: logger.With(slog.String("component", "dress_store")),
	}
}

var _ store.DressStore = (*PostgresDressStore)(nil)

// GetByID implements store.DressStore.GetByID
func (s *PostgresDressStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, store_id, name, description, price, category, created_at
		FROM dresses
		WHERE id = $1
	`

	var dress domain.Dress
	var category string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dress.ID,
		&dress.StoreID,
		&dress.Name,
		&dress.Description,
		&dress.Price,
		&category,
		&dress.CreatedAt,
	)
	if err != nil {
		err = MapEntityError(err, store.ErrDressNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("dress not found", slog.String("dress_id", id.String()))
			return nil, err
		}
		log.Error("failed to get dress by ID",
			slog.String("error", err.Error()),
			slog.String("dress_id", id.String()))
		return nil, err
	}
	dress.Category = domain.DressCategory(category)

	return &dress, nil
}

// Search implements store.DressStore.Search
func (s *PostgresDressStore) Search(
	ctx context.Context,
	criteria domain.DressSearchCriteria,
) ([]*domain.DressBrief, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy, ok := dressOrderBy[criteria.Sort]
	if !ok {
		return nil, store.NewStoreError("dress", "search",
			fmt.Sprintf("unsupported sort %q", criteria.Sort), store.ErrInvalidEntity)
	}

	query := dressBriefSelect + `
		WHERE ($2 = '' OR d.name ILIKE '%' || $2 || '%')
		  AND ($3::text IS NULL OR d.category = $3)` +
		dressBriefGroupBy + orderBy

	rows, err := s.db.QueryContext(ctx, query,
		criteria.UserID,
		escapeLike(strings.TrimSpace(criteria.Name)),
		nullCategory(criteria.Category),
	)
	if err != nil {
		log.Error("failed to search dresses",
			slog.String("error", err.Error()),
			slog.String("sort", string(criteria.Sort)))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	briefs, err := scanDressBriefs(rows)
	if err != nil {
		log.Error("failed to read dress search rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("dress search completed",
		slog.Int("count", len(briefs)),
		slog.String("sort", string(criteria.Sort)))
	return briefs, nil
}

// FindByStore implements store.DressStore.FindByStore
func (s *PostgresDressStore) FindByStore(
	ctx context.Context,
	storeID uuid.UUID,
	category *domain.DressCategory,
) ([]*domain.DressBrief, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := dressBriefSelect + `
		WHERE d.store_id = $2
		  AND ($3::text IS NULL OR d.category = $3)` +
		dressBriefGroupBy + dressOrderBy[domain.SortLatest]

	rows, err := s.db.QueryContext(ctx, query, uuid.Nil, storeID, nullCategory(category))
	if err != nil {
		log.Error("failed to list store dresses",
			slog.String("error", err.Error()),
			slog.String("store_id", storeID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	briefs, err := scanDressBriefs(rows)
	if err != nil {
		log.Error("failed to read store dress rows",
			slog.String("error", err.Error()),
			slog.String("store_id", storeID.String()))
		return nil, err
	}
	return briefs, nil
}

// FindLikedByUser implements store.DressStore.FindLikedByUser
func (s *PostgresDressStore) FindLikedByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LikedDress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT d.id, d.name, d.price, COALESCE(img.key, ''), l.created_at
		FROM dress_likes l
		JOIN dresses d ON d.id = l.dress_id` + firstImageJoin + `
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC, d.id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list liked dresses",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	liked := make([]*domain.LikedDress, 0)
	for rows.Next() {
		var ld domain.LikedDress
		if err := rows.Scan(&ld.DressID, &ld.Name, &ld.Price, &ld.ImageKey, &ld.LikedAt); err != nil {
			return nil, err
		}
		liked = append(liked, &ld)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return liked, nil
}

// GetImages implements store.DressStore.GetImages
func (s *PostgresDressStore) GetImages(ctx context.Context, dressID uuid.UUID) ([]*domain.DressImage, error) {
	query := `
		SELECT dress_id, key, position
		FROM dress_images
		WHERE dress_id = $1
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, dressID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list dress images",
			slog.String("error", err.Error()),
			slog.String("dress_id", dressID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	images := make([]*domain.DressImage, 0)
	for rows.Next() {
		var img domain.DressImage
		if err := rows.Scan(&img.DressID, &img.Key, &img.Position); err != nil {
			return nil, err
		}
		images = append(images, &img)
	}
	return images, rows.Err()
}

// GetOptions implements store.DressStore.GetOptions
// Options without details are returned with an empty Details slice.
func (s *PostgresDressStore) GetOptions(ctx context.Context, dressID uuid.UUID) ([]*domain.DressOption, error) {
	query := `
		SELECT o.id, o.dress_id, o.name, od.id, od.name
		FROM dress_options o
		LEFT JOIN dress_option_details od ON od.option_id = o.id
		WHERE o.dress_id = $1
		ORDER BY o.position, o.id, od.position, od.id
	`

	rows, err := s.db.QueryContext(ctx, query, dressID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list dress options",
			slog.String("error", err.Error()),
			slog.String("dress_id", dressID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	options := make([]*domain.DressOption, 0)
	var current *domain.DressOption
	for rows.Next() {
		var (
			opt        domain.DressOption
			detailID   uuid.NullUUID
			detailName sql.NullString
		)
		if err := rows.Scan(&opt.ID, &opt.DressID, &opt.Name, &detailID, &detailName); err != nil {
			return nil, err
		}
		if current == nil || current.ID != opt.ID {
			opt.Details = make([]domain.DressOptionDetail, 0)
			current = &opt
			options = append(options, current)
		}
		if detailID.Valid {
			current.Details = append(current.Details, domain.DressOptionDetail{
				ID:       detailID.UUID,
				OptionID: current.ID,
				Name:     detailName.String,
			})
		}
	}
	return options, rows.Err()
}

// WithTx implements store.DressStore.WithTx
func (s *PostgresDressStore) WithTx(tx *sql.Tx) store.DressStore {
	return &PostgresDressStore{db: tx, logger: s.logger}
}

func scanDressBriefs(rows *sql.Rows) ([]*domain.DressBrief, error) {
	briefs := make([]*domain.DressBrief, 0)
	for rows.Next() {
		var (
			b        domain.DressBrief
			category string
		)
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Price,
			&category,
			&b.CreatedAt,
			&b.StoreID,
			&b.StoreName,
			&b.StoreLat,
			&b.StoreLng,
			&b.ImageKey,
			&b.LikeCount,
			&b.Liked,
		); err != nil {
			return nil, err
		}
		b.Category = domain.DressCategory(category)
		briefs = append(briefs, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return briefs, nil
}

func nullCategory(c *domain.DressCategory) sql.NullString {
	if c == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*c), Valid: true}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
