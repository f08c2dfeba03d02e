// Package model はドメインモデルを定義する。
package model

import "time"

// Profile はユーザーの公開プロフィールを表す。
// usersテーブルと1対1で対応し、初回の旅行作成時に存在しなければ遅延作成される。
type Profile struct {
	ID        string // users.idと同一
	FirstName string
	LastName  string
	Phone     string
	City      string
	Country   string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
