// file: internals/features/activities/controller/activity_query_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"neudev_backend/internals/constants"
	authMw "neudev_backend/internals/middlewares/auth"

	"neudev_backend/internals/features/activities/dto"
	"neudev_backend/internals/features/activities/model"
	"neudev_backend/internals/features/activities/service"
	classModel "neudev_backend/internals/features/classrooms/model"
	teacherModel "neudev_backend/internals/features/users/teachers/model"

	helper "neudev_backend/internals/helpers"
)

// ActivityQueryController serves the read-side listings: bucketed class views,
// item views and leaderboards.
type ActivityQueryController struct {
	DB    *gorm.DB
	Clock service.Clock
}

func NewActivityQueryController(db *gorm.DB) *ActivityQueryController {
	return &ActivityQueryController{DB: db, Clock: time.Now}
}

/* ===============================
   Bucketed listings
=================================*/

// ClassActivities handles GET /api/teacher/class/:classID/activities. The lazy
// completed_at sweep runs first, then activities are bucketed by window.
func (ctrl *ActivityQueryController) ClassActivities(c *fiber.Ctx) error {
	teacherID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	classID, err := strconv.ParseInt(c.Params("classID"), 10, 64)
	if err != nil || classID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class classModel.ClassroomModel
	if err := ctrl.DB.First(&class, `"classID" = ?`, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Printf("[ERROR] class lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if class.TeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not own this class")
	}

	now := ctrl.Clock()
	if _, err := service.SweepCompleted(ctrl.DB, classID, now); err != nil {
		log.Printf("[ERROR] completed sweep: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	var acts []model.ActivityModel
	if err := ctrl.DB.
		Preload("Items").
		Preload("Items.Item").
		Preload("ProgrammingLanguages").
		Where(`"classID" = ?`, classID).
		Order(`"openDate" ASC`).
		Find(&acts).Error; err != nil {
		log.Printf("[ERROR] class activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	resp := dto.ClassActivitiesResponse{
		Upcoming:  []model.ActivityModel{},
		Ongoing:   []model.ActivityModel{},
		Completed: []model.ActivityModel{},
	}
	for _, act := range acts {
		switch service.Classify(act.OpenDate, act.CloseDate, now) {
		case service.StatusUpcoming:
			resp.Upcoming = append(resp.Upcoming, act)
		case service.StatusOngoing:
			resp.Ongoing = append(resp.Ongoing, act)
		default:
			resp.Completed = append(resp.Completed, act)
		}
	}
	return helper.JsonOK(c, "ok", resp)
}

// StudentActivities handles GET /api/student/activities: all activities across
// the caller's enrolled classes, bucketed, each annotated with the caller's
// rank and score (null when they have not submitted).
func (ctrl *ActivityQueryController) StudentActivities(c *fiber.Ctx) error {
	studentID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var classIDs []int64
	if err := ctrl.DB.Model(&classModel.ClassStudentModel{}).
		Where(`"studentID" = ?`, studentID).
		Pluck(`"classID"`, &classIDs).Error; err != nil {
		log.Printf("[ERROR] enrolled class ids: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	resp := dto.StudentBucketsResponse{
		Upcoming:  []dto.StudentActivityRow{},
		Ongoing:   []dto.StudentActivityRow{},
		Completed: []dto.StudentActivityRow{},
	}
	if len(classIDs) == 0 {
		return helper.JsonOK(c, "ok", resp)
	}

	now := ctrl.Clock()
	for _, classID := range classIDs {
		if _, err := service.SweepCompleted(ctrl.DB, classID, now); err != nil {
			log.Printf("[ERROR] completed sweep: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
	}

	var acts []model.ActivityModel
	if err := ctrl.DB.
		Preload("Teacher").
		Preload("ProgrammingLanguages").
		Where(`"classID" IN ?`, classIDs).
		Order(`"openDate" ASC`).
		Find(&acts).Error; err != nil {
		log.Printf("[ERROR] student activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	for _, act := range acts {
		entries, err := ctrl.leaderboardEntries(act.ActID)
		if err != nil {
			log.Printf("[ERROR] leaderboard entries: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
		}
		rank, score := service.StudentRank(entries, studentID)

		row := dto.StudentActivityRow{
			ActivityModel: act,
			TeacherName:   teacherDisplayName(act.Teacher),
			Rank:          rank,
			OverallScore:  score,
		}
		if score != nil {
			display := service.FormatScore(*score)
			row.ScoreDisplay = &display
		}

		switch service.Classify(act.OpenDate, act.CloseDate, now) {
		case service.StatusUpcoming:
			resp.Upcoming = append(resp.Upcoming, row)
		case service.StatusOngoing:
			resp.Ongoing = append(resp.Ongoing, row)
		default:
			resp.Completed = append(resp.Completed, row)
		}
	}
	return helper.JsonOK(c, "ok", resp)
}

/* ===============================
   Activity items
=================================*/

// itemAverages is the per-item aggregate on the teacher's item view.
type itemAverages struct {
	ItemID       int64    `json:"itemID"`
	AvgScore     *float64 `json:"avgScore"`
	AvgTimeSpent *float64 `json:"avgTimeSpent"`
}

// TeacherActivityItems handles GET /api/teacher/activities/:actID/items: full
// item details including hidden test cases, plus class averages per item.
func (ctrl *ActivityQueryController) TeacherActivityItems(c *fiber.Ctx) error {
	act, err := ctrl.loadActivity(c)
	if err != nil {
		return err
	}

	items, err := ctrl.activityItems(act.ActID)
	if err != nil {
		log.Printf("[ERROR] activity items: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}

	var averages []itemAverages
	if err := ctrl.DB.Raw(`
		SELECT "itemID" AS item_id, AVG(score) AS avg_score, AVG("timeSpent") AS avg_time_spent
		FROM activity_submissions
		WHERE "actID" = ? AND "itemID" IS NOT NULL
		GROUP BY "itemID"`, act.ActID).Scan(&averages).Error; err != nil {
		log.Printf("[ERROR] item averages: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	avgByItem := map[int64]itemAverages{}
	for _, a := range averages {
		avgByItem[a.ItemID] = a
	}

	type row struct {
		model.ActivityItemModel
		AvgScore     *float64 `json:"avgScore"`
		AvgTimeSpent *float64 `json:"avgTimeSpent"`
	}
	out := make([]row, 0, len(items))
	for _, it := range items {
		r := row{ActivityItemModel: it}
		if a, found := avgByItem[it.ItemID]; found {
			r.AvgScore = a.AvgScore
			r.AvgTimeSpent = a.AvgTimeSpent
		}
		out = append(out, r)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"actID":     act.ActID,
		"actTitle":  act.ActTitle,
		"maxPoints": act.MaxPoints,
		"items":     out,
	})
}

// StudentActivityItems handles GET /api/student/activities/:actID/items.
// Hidden test cases are withheld from the payload.
func (ctrl *ActivityQueryController) StudentActivityItems(c *fiber.Ctx) error {
	studentID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	act, err := ctrl.loadActivity(c)
	if err != nil {
		return err
	}
	if err := ctrl.requireEnrollment(c, act.ClassID, studentID); err != nil {
		return err
	}

	items, err := ctrl.activityItems(act.ActID)
	if err != nil {
		log.Printf("[ERROR] activity items: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	for i := range items {
		if items[i].Item == nil {
			continue
		}
		visible := items[i].Item.TestCases[:0:0]
		for _, tc := range items[i].Item.TestCases {
			if !tc.IsHidden {
				visible = append(visible, tc)
			}
		}
		items[i].Item.TestCases = visible
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"actID":       act.ActID,
		"actTitle":    act.ActTitle,
		"actDuration": act.ActDuration,
		"maxPoints":   act.MaxPoints,
		"items":       items,
	})
}

/* ===============================
   Leaderboards
=================================*/

// TeacherLeaderboard handles GET /api/teacher/activities/:actID/leaderboard.
func (ctrl *ActivityQueryController) TeacherLeaderboard(c *fiber.Ctx) error {
	act, err := ctrl.loadActivity(c)
	if err != nil {
		return err
	}
	return ctrl.writeLeaderboard(c, act)
}

// StudentLeaderboard handles GET /api/student/activities/:actID/leaderboard.
// Hidden from students when the activity's hideLeaderboard flag is on.
func (ctrl *ActivityQueryController) StudentLeaderboard(c *fiber.Ctx) error {
	studentID, ok := authMw.UserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	act, err := ctrl.loadActivity(c)
	if err != nil {
		return err
	}
	if err := ctrl.requireEnrollment(c, act.ClassID, studentID); err != nil {
		return err
	}
	if role, _ := authMw.UserRole(c); role == constants.RoleStudent && act.HideLeaderboard {
		return helper.JsonError(c, fiber.StatusForbidden, "The leaderboard is hidden for this activity")
	}
	return ctrl.writeLeaderboard(c, act)
}

// writeLeaderboard serves the ranked board. An empty board is a 200 with an
// explanatory message, distinct from the 404 of an unknown activity.
func (ctrl *ActivityQueryController) writeLeaderboard(c *fiber.Ctx, act *model.ActivityModel) error {
	entries, err := ctrl.leaderboardEntries(act.ActID)
	if err != nil {
		log.Printf("[ERROR] leaderboard entries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if len(entries) == 0 {
		return helper.JsonOK(c, "No submissions yet for this activity", []service.RankedEntry{})
	}
	return helper.JsonOK(c, "ok", service.Rank(entries))
}

/* ===============================
   internals
=================================*/

// leaderboardEntries sums each student's submission scores for the activity.
func (ctrl *ActivityQueryController) leaderboardEntries(actID int64) ([]service.Entry, error) {
	type scanRow struct {
		StudentID int64
		Firstname string
		Lastname  string
		Program   string
		Score     int
	}
	var rows []scanRow
	if err := ctrl.DB.Raw(`
		SELECT sub."studentID" AS student_id, st.firstname, st.lastname, st.program,
		       COALESCE(SUM(sub.score), 0) AS score
		FROM activity_submissions sub
		JOIN students st ON st."studentID" = sub."studentID"
		WHERE sub."actID" = ?
		GROUP BY sub."studentID", st.firstname, st.lastname, st.program`, actID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]service.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, service.Entry{
			StudentID: r.StudentID,
			Firstname: r.Firstname,
			Lastname:  r.Lastname,
			Program:   r.Program,
			Score:     r.Score,
		})
	}
	return entries, nil
}

func (ctrl *ActivityQueryController) activityItems(actID int64) ([]model.ActivityItemModel, error) {
	var items []model.ActivityItemModel
	err := ctrl.DB.
		Preload("Item").
		Preload("Item.TestCases").
		Preload("Item.ProgrammingLanguages").
		Preload("ItemType").
		Where(`"actID" = ?`, actID).
		Order(`"actItemID" ASC`).
		Find(&items).Error
	return items, err
}

func (ctrl *ActivityQueryController) loadActivity(c *fiber.Ctx) (*model.ActivityModel, error) {
	actID, err := strconv.ParseInt(c.Params("actID"), 10, 64)
	if err != nil || actID <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}
	var act model.ActivityModel
	if err := ctrl.DB.First(&act, `"actID" = ?`, actID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		log.Printf("[ERROR] activity lookup: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	return &act, nil
}

func (ctrl *ActivityQueryController) requireEnrollment(c *fiber.Ctx, classID, studentID int64) error {
	var n int64
	if err := ctrl.DB.Model(&classModel.ClassStudentModel{}).
		Where(`"classID" = ? AND "studentID" = ?`, classID, studentID).
		Count(&n).Error; err != nil {
		log.Printf("[ERROR] enrollment check: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unexpected server error.")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "You are not enrolled in this class")
	}
	return nil
}

func teacherDisplayName(t *teacherModel.TeacherModel) string {
	if t == nil {
		return ""
	}
	return t.Firstname + " " + t.Lastname
}
