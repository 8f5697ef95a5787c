// internals/features/quizzes/analytics/service/analytics_service.go
package service

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"quizku_backend/internals/constants"
	"quizku_backend/internals/features/quizzes/analytics/dto"
	resultModel "quizku_backend/internals/features/quizzes/results/model"
	userModel "quizku_backend/internals/features/users/user/model"
)

const (
	TopStudentsLimit = 10
	RecentFeedSize   = 20
)

// Pct: persentase satu attempt. total <= 0 dihitung 0 (tidak pernah NaN/Inf).
func Pct(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// Round1: pembulatan satu desimal.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// sortNewestFirst: salinan rows urut createdAt desc, id desc.
func sortNewestFirst(rows []resultModel.ResultModel) []resultModel.ResultModel {
	out := append([]resultModel.ResultModel(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out
}

/* ===================== Snapshot (per user) ===================== */

// LatestPerSubject: satu entri per subject, yang createdAt-nya paling baru,
// urut sesuai kemunculan pertama (terbaru dulu).
func LatestPerSubject(rows []resultModel.ResultModel) []dto.SubjectSnapshot {
	out := []dto.SubjectSnapshot{}
	seen := map[string]struct{}{}
	for _, r := range sortNewestFirst(rows) {
		if _, ok := seen[r.Subject]; ok {
			continue
		}
		seen[r.Subject] = struct{}{}
		out = append(out, dto.SubjectSnapshot{
			Subject:   r.Subject,
			Score:     r.Score,
			Total:     r.Total,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

/* ===================== Platform-wide ===================== */

// SubjectStats: attempts & rata-rata persentase per subject.
// Urut attempts desc, lalu nama subject asc.
func SubjectStats(rows []resultModel.ResultModel) []dto.SubjectStat {
	type acc struct {
		attempts int
		sumPct   float64
	}
	bySubject := map[string]*acc{}
	for _, r := range rows {
		a, ok := bySubject[r.Subject]
		if !ok {
			a = &acc{}
			bySubject[r.Subject] = a
		}
		a.attempts++
		a.sumPct += Pct(r.Score, r.Total)
	}

	out := make([]dto.SubjectStat, 0, len(bySubject))
	for subject, a := range bySubject {
		out = append(out, dto.SubjectStat{
			Subject:     subject,
			Attempts:    a.attempts,
			AvgScorePct: Round1(a.sumPct / float64(a.attempts)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Attempts != out[j].Attempts {
			return out[i].Attempts > out[j].Attempts
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}

// TopStudents: leaderboard mahasiswa. Filter role dilakukan sebelum dipotong ke limit,
// jadi admin yang ikut kuis tidak "memakan" slot.
// Urut attempts desc, avg desc (belum dibulatkan), lalu userId asc.
func TopStudents(rows []resultModel.ResultModel, users map[uuid.UUID]userModel.UserModel, limit int) []dto.StudentRank {
	type acc struct {
		attempts int
		sumPct   float64
		last     time.Time
	}
	byUser := map[uuid.UUID]*acc{}
	for _, r := range rows {
		u, ok := users[r.UserID]
		if !ok || u.Role != constants.RoleStudent {
			continue
		}
		a, ok := byUser[r.UserID]
		if !ok {
			a = &acc{}
			byUser[r.UserID] = a
		}
		a.attempts++
		a.sumPct += Pct(r.Score, r.Total)
		if r.CreatedAt.After(a.last) {
			a.last = r.CreatedAt
		}
	}

	type ranked struct {
		id  uuid.UUID
		acc *acc
		avg float64
	}
	list := make([]ranked, 0, len(byUser))
	for id, a := range byUser {
		list = append(list, ranked{id: id, acc: a, avg: a.sumPct / float64(a.attempts)})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].acc.attempts != list[j].acc.attempts {
			return list[i].acc.attempts > list[j].acc.attempts
		}
		if list[i].avg != list[j].avg {
			return list[i].avg > list[j].avg
		}
		return list[i].id.String() < list[j].id.String()
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}

	out := make([]dto.StudentRank, 0, len(list))
	for _, r := range list {
		u := users[r.id]
		out = append(out, dto.StudentRank{
			UserID:         r.id.String(),
			Name:           u.Name,
			RegisterNumber: u.RegisterNumber,
			Department:     u.Department,
			Attempts:       r.acc.attempts,
			AvgScorePct:    Round1(r.avg),
			LastAttemptAt:  r.acc.last,
		})
	}
	return out
}

// ComputeKPIs: students dari direktori user, attempts = ukuran ledger.
func ComputeKPIs(students int64, rows []resultModel.ResultModel) dto.KPIs {
	k := dto.KPIs{Students: students, Attempts: int64(len(rows))}
	if len(rows) == 0 {
		return k
	}
	var sum float64
	for _, r := range rows {
		sum += Pct(r.Score, r.Total)
	}
	k.AvgScorePct = Round1(sum / float64(len(rows)))
	return k
}

// RecentFeed: recent (sudah urut terbaru & dipotong N) di-join ke user,
// lalu disaring role=student. Hasil bisa < N.
func RecentFeed(recent []resultModel.ResultModel, users map[uuid.UUID]userModel.UserModel) []dto.RecentAttempt {
	out := []dto.RecentAttempt{}
	for _, r := range recent {
		u, ok := users[r.UserID]
		if !ok || u.Role != constants.RoleStudent {
			continue
		}
		out = append(out, dto.RecentAttempt{
			ID: r.ID.String(),
			User: dto.AttemptUser{
				ID:             u.ID.String(),
				Name:           u.Name,
				RegisterNumber: u.RegisterNumber,
				Department:     u.Department,
			},
			Subject:   r.Subject,
			Score:     r.Score,
			Total:     r.Total,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

// UserIDs: id user unik dari beberapa kumpulan rows (untuk satu kali lookup direktori).
func UserIDs(sets ...[]resultModel.ResultModel) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{}
	var ids []uuid.UUID
	for _, rows := range sets {
		for _, r := range rows {
			if _, ok := seen[r.UserID]; ok {
				continue
			}
			seen[r.UserID] = struct{}{}
			ids = append(ids, r.UserID)
		}
	}
	return ids
}

// Overview merangkai semua view admin dari ledger + direktori user.
func Overview(students int64, all, recent []resultModel.ResultModel, users []userModel.UserModel) dto.AdminOverview {
	byID := make(map[uuid.UUID]userModel.UserModel, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return dto.AdminOverview{
		KPIs:           ComputeKPIs(students, all),
		BySubject:      SubjectStats(all),
		TopStudents:    TopStudents(all, byID, TopStudentsLimit),
		RecentAttempts: RecentFeed(recent, byID),
	}
}
