package app

import "time"

func SetMealClock(s *MealService, now func() time.Time) { s.now = now }

func SetDailyLogClock(s *DailyLogService, now func() time.Time) { s.now = now }

func SetExtractionClock(s *ExtractionService, now func() time.Time) { s.now = now }

func SetChartsClock(s *ChartsService, now func() time.Time) { s.now = now }
