package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/desi-delights/internal/model"
)

func TestCheckInCheckOutFlow(t *testing.T) {
    db := setupDB(t)
    svc := NewStaffService(db)
    ctx := context.Background()

    att, err := svc.CheckIn(ctx, 7)
    require.NoError(t, err)
    assert.Equal(t, time.Now().Format("2006-01-02"), att.Date)
    assert.Nil(t, att.CheckOut)

    _, err = svc.CheckIn(ctx, 7)
    assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

    out, err := svc.CheckOut(ctx, 7)
    require.NoError(t, err)
    require.NotNil(t, out.CheckOut)

    _, err = svc.CheckOut(ctx, 7)
    assert.ErrorIs(t, err, ErrNoOpenAttendance)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
    db := setupDB(t)
    svc := NewStaffService(db)
    _, err := svc.CheckOut(context.Background(), 9)
    assert.ErrorIs(t, err, ErrNoOpenAttendance)
}

func TestLeaveDecision(t *testing.T) {
    db := setupDB(t)
    svc := NewStaffService(db)
    ctx := context.Background()

    req := &model.LeaveRequest{StaffID: 7, FromDate: "2026-09-01", ToDate: "2026-09-03", Reason: "family"}
    require.NoError(t, svc.RequestLeave(ctx, req))
    assert.Equal(t, model.LeavePending, req.Status)

    _, err := svc.DecideLeave(ctx, req.ID, 1, "Maybe")
    assert.ErrorIs(t, err, ErrBadLeaveDecision)

    decided, err := svc.DecideLeave(ctx, req.ID, 1, model.LeaveApproved)
    require.NoError(t, err)
    assert.Equal(t, model.LeaveApproved, decided.Status)
    assert.EqualValues(t, 1, decided.DecidedBy)

    mine, err := svc.ListLeaves(ctx, 7)
    require.NoError(t, err)
    require.Len(t, mine, 1)

    all, err := svc.ListLeaves(ctx, 0)
    require.NoError(t, err)
    require.Len(t, all, 1)
}

func TestHolidays(t *testing.T) {
    db := setupDB(t)
    svc := NewStaffService(db)
    ctx := context.Background()

    require.NoError(t, svc.AddHoliday(ctx, &model.Holiday{Name: "Diwali", Date: "2026-11-08"}))
    require.NoError(t, svc.AddHoliday(ctx, &model.Holiday{Name: "Holi", Date: "2026-03-03"}))

    rows, err := svc.ListHolidays(ctx)
    require.NoError(t, err)
    require.Len(t, rows, 2)
    assert.Equal(t, "Holi", rows[0].Name) // 按日期排序
}
