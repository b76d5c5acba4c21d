// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-grid-defense/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseClass выполняет взвешенный случайный выбор класса врага из таблицы
// спавна, учитывая только записи, доступные на данной волне.
func (s *PRNGService) ChooseClass(entries []defs.SpawnEntry, waveNumber int) defs.Class {
	totalWeight := 0
	for _, entry := range entries {
		if waveNumber >= entry.MinWave {
			totalWeight += entry.Weight
		}
	}

	if totalWeight <= 0 {
		return defs.ClassBasic
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if waveNumber < entry.MinWave {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Class
		}
		upto += entry.Weight
	}
	return defs.ClassBasic
}

// ChooseElement выбирает стихию врага равновероятно из известных.
func (s *PRNGService) ChooseElement(elements []defs.Element) defs.Element {
	if len(elements) == 0 {
		return defs.ElementNormal
	}
	return elements[s.Intn(len(elements))]
}
