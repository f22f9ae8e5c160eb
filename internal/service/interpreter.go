package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/repository"
)

// Classification is the structured answer expected from the classifier.
type Classification struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// ConditionClassifier picks the best-matching condition for free-text
// symptoms. Implementations are best-effort: any error or unusable answer is
// swallowed by the interpreter and resolution falls through to keywords.
type ConditionClassifier interface {
	ClassifyCondition(ctx context.Context, symptoms string, candidates []models.Condition) (*Classification, error)
}

// keywordEntry maps a symptom keyword or phrase to a condition code. Order
// matters: the first entry whose keyword appears in the lowercased symptom
// text wins.
type keywordEntry struct {
	keyword string
	code    string
}

var conditionKeywords = []keywordEntry{
	{"diabetes", "DIABETES"},
	{"sugar", "DIABETES"},
	{"highblood", "HYPERTENSION"},
	{"hypertension", "HYPERTENSION"},
	{"bloodpressure", "HYPERTENSION"},
	{"ulcer", "ULCER"},
	{"stomach", "ULCER"},
	{"celiac", "CELIAC"},
	{"gluten", "CELIAC"},
	{"lactose", "LACTOSE"},
	{"milk", "LACTOSE"},
	{"kidney", "KIDNEY"},
	{"renal", "KIDNEY"},
	{"gout", "GOUT"},
	{"arthritis", "GOUT"},
	{"obese", "OBESITY"},
	{"obesity", "OBESITY"},
	{"cholesterol", "HYPERLIPIDEMIA"},
	{"anemia", "ANEMIA"},
	{"pregnancy", "PREGNANCY"},
	{"ibs", "IBS"},
	{"irritable bowel", "IBS"},
	{"reflux", "GERD"},
	{"acidity", "GERD"},
	{"asthma", "ASTHMA"},
	{"headache", "MIGRAINE"},
	{"migraine", "MIGRAINE"},
}

// ConditionInterpreter resolves free-text symptoms or an explicit code into a
// condition record. Resolution tries, in order: exact code lookup, the
// optional classifier, the keyword table, then the GENERAL fallback. The
// first resolver that produces a condition wins.
type ConditionInterpreter struct {
	repo       repository.Repository
	classifier ConditionClassifier
	timeout    time.Duration
	logger     *zap.Logger
}

// NewConditionInterpreter creates an interpreter. classifier may be nil to
// disable the external oracle; timeout bounds each classifier call.
func NewConditionInterpreter(repo repository.Repository, classifier ConditionClassifier, timeout time.Duration, logger *zap.Logger) *ConditionInterpreter {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConditionInterpreter{
		repo:       repo,
		classifier: classifier,
		timeout:    timeout,
		logger:     logger,
	}
}

// Interpret resolves symptomsText and/or conditionCode into a condition.
// It never fails: at worst it returns the GENERAL condition, synthesizing a
// zero-constraint stand-in if even GENERAL is absent from the table.
func (i *ConditionInterpreter) Interpret(ctx context.Context, symptomsText, conditionCode string) models.Condition {
	type resolver func(ctx context.Context, symptoms, code string) (models.Condition, bool)
	for _, resolve := range []resolver{i.resolveCode, i.resolveClassifier, i.resolveKeyword} {
		if cond, ok := resolve(ctx, symptomsText, conditionCode); ok {
			return cond
		}
	}
	return i.defaultCondition()
}

func (i *ConditionInterpreter) resolveCode(_ context.Context, _, code string) (models.Condition, bool) {
	if code == "" {
		return models.Condition{}, false
	}
	return i.repo.LookupCondition(strings.ToUpper(code))
}

func (i *ConditionInterpreter) resolveClassifier(ctx context.Context, symptoms, _ string) (models.Condition, bool) {
	if i.classifier == nil {
		return models.Condition{}, false
	}

	cctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	result, err := i.classifier.ClassifyCondition(cctx, symptoms, i.repo.ListConditions())
	if err != nil {
		i.logger.Warn("condition classifier failed, falling back to keywords", zap.Error(err))
		return models.Condition{}, false
	}
	if result == nil {
		return models.Condition{}, false
	}

	cond, ok := i.repo.LookupCondition(result.Code)
	if !ok {
		i.logger.Warn("condition classifier returned unknown code", zap.String("code", result.Code))
		return models.Condition{}, false
	}
	cond.Notes = result.Notes
	return cond, true
}

func (i *ConditionInterpreter) resolveKeyword(_ context.Context, symptoms, _ string) (models.Condition, bool) {
	lower := strings.ToLower(symptoms)
	if lower == "" {
		return models.Condition{}, false
	}
	for _, entry := range conditionKeywords {
		if !strings.Contains(lower, entry.keyword) {
			continue
		}
		if cond, ok := i.repo.LookupCondition(entry.code); ok {
			return cond, true
		}
	}
	return models.Condition{}, false
}

func (i *ConditionInterpreter) defaultCondition() models.Condition {
	if cond, ok := i.repo.LookupCondition(models.GeneralConditionCode); ok {
		return cond
	}
	return models.Condition{
		Code: models.GeneralConditionCode,
		Name: "General/Default",
	}
}
