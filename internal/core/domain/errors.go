package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrArtworkNotFound = errors.New("artwork not found")
var ErrSelfFollow = errors.New("cannot follow yourself")
var ErrSelfPurchase = errors.New("cannot purchase your own artwork")
var ErrArtworkUnavailable = errors.New("artwork is no longer available")
var ErrInsufficientBalance = errors.New("insufficient RB balance")
var ErrConflict = errors.New("concurrent operation in progress")
