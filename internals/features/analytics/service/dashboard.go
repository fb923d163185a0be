package service

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rayk_backend/internals/features/analytics/dto"
	surveyModel "rayk_backend/internals/features/surveys/model"
)

// DashboardService aggregates one survey's responses into the metrics
// the dashboard renders. All queries are org- and survey-scoped.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type valueCountRow struct {
	QuestionID uuid.UUID
	Value      string
	N          int64
}

func (s *DashboardService) BuildDashboard(survey *surveyModel.SurveyModel) (*dto.DashboardDTO, error) {
	out := &dto.DashboardDTO{
		SurveyID:   survey.SurveyID.String(),
		Channels:   map[string]int64{},
		Sentiments: map[string]int64{},
		Questions:  []dto.QuestionStatDTO{},
	}

	if err := s.DB.Table("survey_responses").
		Where("survey_response_survey_id = ? AND survey_response_deleted_at IS NULL", survey.SurveyID).
		Count(&out.TotalResponses).Error; err != nil {
		return nil, err
	}

	// Reach: deliveries that actually went out for this survey's campaigns.
	var reached, responded int64
	if err := s.DB.Table("survey_deliveries").
		Joins("JOIN survey_campaigns ON campaign_id = delivery_campaign_id").
		Where("campaign_survey_id = ? AND delivery_deleted_at IS NULL", survey.SurveyID).
		Where("delivery_status IN ?", []string{"sent", "responded"}).
		Count(&reached).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Table("survey_deliveries").
		Joins("JOIN survey_campaigns ON campaign_id = delivery_campaign_id").
		Where("campaign_survey_id = ? AND delivery_deleted_at IS NULL", survey.SurveyID).
		Where("delivery_status = ?", "responded").
		Count(&responded).Error; err != nil {
		return nil, err
	}
	out.DeliveriesSent = reached
	out.CompletionRate = CompletionRate(responded, reached)

	// One grouped scan covers histograms, averages, CSAT and NPS.
	var counts []valueCountRow
	if err := s.DB.Table("survey_question_responses").
		Select("question_response_question_id AS question_id, question_response_value::text AS value, COUNT(*) AS n").
		Joins("JOIN survey_responses ON survey_response_id = question_response_response_id").
		Where("survey_response_survey_id = ? AND survey_response_deleted_at IS NULL", survey.SurveyID).
		Group("question_response_question_id, question_response_value::text").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	byQuestion := make(map[uuid.UUID][]valueCountRow)
	for _, row := range counts {
		byQuestion[row.QuestionID] = append(byQuestion[row.QuestionID], row)
	}

	var csatRatings, npsRatings []int
	for _, q := range survey.Questions {
		stat := dto.QuestionStatDTO{
			QuestionID:   q.QuestionID.String(),
			QuestionType: string(q.QuestionType),
			QuestionText: q.QuestionText,
		}

		rows := byQuestion[q.QuestionID]
		if len(rows) > 0 && q.QuestionType != surveyModel.QuestionTypeOpenText {
			stat.Histogram = map[string]int64{}
		}
		var ratings []int
		for _, row := range rows {
			stat.Answers += row.N
			if q.QuestionType == surveyModel.QuestionTypeOpenText {
				continue
			}
			key := strings.Trim(row.Value, `"`)
			stat.Histogram[key] += row.N

			if _, _, isRating := q.QuestionType.RatingBounds(); isRating {
				if v, err := strconv.Atoi(key); err == nil {
					for i := int64(0); i < row.N; i++ {
						ratings = append(ratings, v)
					}
				}
			}
		}

		switch q.QuestionType {
		case surveyModel.QuestionTypeRating1To5:
			if mean, ok := MeanRating(ratings); ok {
				stat.Average = &mean
			}
			csatRatings = append(csatRatings, ratings...)
		case surveyModel.QuestionTypeRating0To10:
			if mean, ok := MeanRating(ratings); ok {
				stat.Average = &mean
			}
			npsRatings = append(npsRatings, ratings...)
		}

		out.Questions = append(out.Questions, stat)
	}

	if score, ok := CSATScore(csatRatings); ok {
		out.CSAT = &score
	}
	if score, ok := NPSScore(npsRatings); ok {
		out.NPS = &score
	}

	if err := s.loadTimeseries(survey.SurveyID, out); err != nil {
		return nil, err
	}
	if err := s.loadChannels(survey.SurveyID, out); err != nil {
		return nil, err
	}
	if err := s.loadSentiments(survey.SurveyID, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DashboardService) loadTimeseries(surveyID uuid.UUID, out *dto.DashboardDTO) error {
	type dayRow struct {
		Day string
		N   int64
	}
	var days []dayRow
	err := s.DB.Table("survey_responses").
		Select("to_char(date_trunc('day', survey_response_created_at), 'YYYY-MM-DD') AS day, COUNT(*) AS n").
		Where("survey_response_survey_id = ? AND survey_response_deleted_at IS NULL", surveyID).
		Group("day").
		Order("day ASC").
		Scan(&days).Error
	if err != nil {
		return err
	}
	out.ResponsesPerDay = make([]dto.TimeseriesPointDTO, 0, len(days))
	for _, d := range days {
		out.ResponsesPerDay = append(out.ResponsesPerDay, dto.TimeseriesPointDTO{Date: d.Day, Count: d.N})
	}
	return nil
}

func (s *DashboardService) loadChannels(surveyID uuid.UUID, out *dto.DashboardDTO) error {
	type channelRow struct {
		Channel string
		N       int64
	}
	var channels []channelRow
	err := s.DB.Table("survey_responses").
		Select("survey_response_channel AS channel, COUNT(*) AS n").
		Where("survey_response_survey_id = ? AND survey_response_deleted_at IS NULL", surveyID).
		Group("survey_response_channel").
		Scan(&channels).Error
	if err != nil {
		return err
	}
	for _, row := range channels {
		out.Channels[row.Channel] = row.N
	}
	return nil
}

func (s *DashboardService) loadSentiments(surveyID uuid.UUID, out *dto.DashboardDTO) error {
	type sentimentRow struct {
		Sentiment string
		N         int64
	}
	var sentiments []sentimentRow
	err := s.DB.Table("survey_question_responses").
		Select("question_response_analysis->>'sentiment' AS sentiment, COUNT(*) AS n").
		Joins("JOIN survey_responses ON survey_response_id = question_response_response_id").
		Where("survey_response_survey_id = ? AND survey_response_deleted_at IS NULL", surveyID).
		Where("question_response_analysis IS NOT NULL").
		Group("question_response_analysis->>'sentiment'").
		Scan(&sentiments).Error
	if err != nil {
		return err
	}
	for _, row := range sentiments {
		if row.Sentiment != "" {
			out.Sentiments[row.Sentiment] = row.N
		}
	}
	return nil
}
