package rating

import (
	"errors"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// performanceTable is owned by the match package; career figures are read from it.
const performanceTable = "player_performances"

type RatingRepository interface {
	// LockProfiles returns the profiles of userIDs, creating missing ones,
	// row-locked in ascending user order. Call it inside WithTransaction.
	LockProfiles(userIDs ...uint) (map[uint]*UserProfile, error)
	SaveProfile(p *UserProfile) error
	CreateHistory(h *RatingHistory) error
	// AwardAchievements inserts achievements, skipping ones already held,
	// and reports how many were new.
	AwardAchievements(list []Achievement) (int64, error)

	GetProfile(userID uint) (*UserProfile, error)
	GetHistory(userID uint, page, limit int) ([]RatingHistory, int64, error)
	GetAchievements(userID uint, page, limit int) ([]Achievement, int64, error)
	GetLeaderboard(page, limit int) ([]UserProfile, int64, error)
	GetCareerFigures(userID uint) (*CareerFigures, error)

	WithTransaction(txFunc func(RatingRepository) error) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) WithTransaction(txFunc func(RatingRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&ratingRepository{db: tx})
	})
}

func (r *ratingRepository) LockProfiles(userIDs ...uint) (map[uint]*UserProfile, error) {
	ids := append([]uint(nil), userIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	seed := make([]UserProfile, 0, len(ids))
	for _, id := range ids {
		seed = append(seed, newProfile(id))
	}
	if len(seed) > 0 {
		err := r.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&seed).Error
		if err != nil {
			return nil, err
		}
	}

	query := r.db.Where("user_id IN ?", ids).Order("user_id asc")
	// SQLite locks the whole database per write transaction and has no FOR UPDATE.
	if r.db.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var profiles []UserProfile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}

	out := make(map[uint]*UserProfile, len(profiles))
	for i := range profiles {
		out[profiles[i].UserID] = &profiles[i]
	}
	return out, nil
}

func (r *ratingRepository) SaveProfile(p *UserProfile) error {
	return r.db.Save(p).Error
}

func (r *ratingRepository) CreateHistory(h *RatingHistory) error {
	return r.db.Create(h).Error
}

func (r *ratingRepository) AwardAchievements(list []Achievement) (int64, error) {
	if len(list) == 0 {
		return 0, nil
	}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&list)
	return res.RowsAffected, res.Error
}

func (r *ratingRepository) GetProfile(userID uint) (*UserProfile, error) {
	var p UserProfile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ratingRepository) GetHistory(userID uint, page, limit int) ([]RatingHistory, int64, error) {
	var rows []RatingHistory
	var total int64
	query := r.db.Model(&RatingHistory{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("id desc").Offset((page - 1) * limit).Limit(limit).Find(&rows).Error
	return rows, total, err
}

func (r *ratingRepository) GetAchievements(userID uint, page, limit int) ([]Achievement, int64, error) {
	var rows []Achievement
	var total int64
	query := r.db.Model(&Achievement{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("id desc").Offset((page - 1) * limit).Limit(limit).Find(&rows).Error
	return rows, total, err
}

func (r *ratingRepository) GetLeaderboard(page, limit int) ([]UserProfile, int64, error) {
	var rows []UserProfile
	var total int64
	query := r.db.Model(&UserProfile{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("current_rating desc, user_id asc").Offset((page - 1) * limit).Limit(limit).Find(&rows).Error
	return rows, total, err
}

// CareerFigures are the sums behind the career averages.
type CareerFigures struct {
	BattingRuns       int64 // over innings with runs > 0
	Dismissals        int64 // of those innings
	StrikeRateRuns    int64 // over innings with balls faced
	BallsFaced        int64
	WicketRunsAgainst int64 // runs conceded in spells that took wickets
	Wickets           int64
}

func (r *ratingRepository) GetCareerFigures(userID uint) (*CareerFigures, error) {
	var f CareerFigures
	perf := func() *gorm.DB { return r.db.Table(performanceTable).Where("user_id = ?", userID) }

	if err := perf().Where("runs > 0").
		Select("COALESCE(SUM(runs), 0) AS batting_runs, COALESCE(SUM(CASE WHEN dismissed THEN 1 ELSE 0 END), 0) AS dismissals").
		Scan(&f).Error; err != nil {
		return nil, err
	}

	var sr struct {
		Runs  int64
		Balls int64
	}
	if err := perf().Where("balls_faced > 0").
		Select("COALESCE(SUM(runs), 0) AS runs, COALESCE(SUM(balls_faced), 0) AS balls").
		Scan(&sr).Error; err != nil {
		return nil, err
	}
	f.StrikeRateRuns, f.BallsFaced = sr.Runs, sr.Balls

	var bowl struct {
		RunsConceded int64
		Wickets      int64
	}
	if err := perf().Where("wickets > 0").
		Select("COALESCE(SUM(runs_conceded), 0) AS runs_conceded, COALESCE(SUM(wickets), 0) AS wickets").
		Scan(&bowl).Error; err != nil {
		return nil, err
	}
	f.WicketRunsAgainst, f.Wickets = bowl.RunsConceded, bowl.Wickets
	return &f, nil
}
