//go:build windows

package launcher

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"go.uber.org/zap"

	"github.com/antonkrylov/wbrunner/internal/procreap"
)

// wmiHost drives a Windows machine, local or remote, through WMI.
type wmiHost struct {
	log *zap.SugaredLogger

	mu      sync.Mutex
	locator *ole.IDispatch
	service *ole.IDispatch
}

func openWMIHost(_ context.Context, req Request, log *zap.SugaredLogger) (Host, error) {
	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		var oleErr *ole.OleError
		// S_FALSE: COM was already initialized on this thread.
		if !errors.As(err, &oleErr) || oleErr.Code() != 1 {
			return nil, fmt.Errorf("initialize COM: %w", err)
		}
	}
	unknown, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("create WMI locator: %w", err)
	}
	defer unknown.Release()
	locator, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("query WMI locator: %w", err)
	}

	var raw *ole.VARIANT
	if req.Host == "" {
		raw, err = oleutil.CallMethod(locator, "ConnectServer")
	} else {
		raw, err = oleutil.CallMethod(locator, "ConnectServer", req.Host, `root\cimv2`, req.Username, req.Password)
	}
	if err != nil {
		locator.Release()
		ole.CoUninitialize()
		if req.Host != "" {
			return nil, fmt.Errorf("WMI service on %s (is it a Windows machine and are the credentials right?): %w", req.Host, err)
		}
		return nil, fmt.Errorf("WMI service on the local computer: %w", err)
	}
	log.Info("host connection is established")
	return &wmiHost{log: log, locator: locator, service: raw.ToIDispatch()}, nil
}

// query runs a WQL statement and calls fn for every row.
func (h *wmiHost) query(wql string, fn func(row *ole.IDispatch) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.service == nil {
		return errors.New("WMI host is closed")
	}
	res, err := oleutil.CallMethod(h.service, "ExecQuery", wql)
	if err != nil {
		return fmt.Errorf("%s: %w", wql, err)
	}
	set := res.ToIDispatch()
	defer set.Release()

	countVar, err := oleutil.GetProperty(set, "Count")
	if err != nil {
		return err
	}
	count := toInt(countVar.Value())
	for i := 0; i < count; i++ {
		itemVar, err := oleutil.CallMethod(set, "ItemIndex", i)
		if err != nil {
			return err
		}
		item := itemVar.ToIDispatch()
		err = fn(item)
		item.Release()
		if err != nil {
			return err
		}
	}
	return nil
}

func property(row *ole.IDispatch, name string) (any, error) {
	v, err := oleutil.GetProperty(row, name)
	if err != nil {
		return nil, err
	}
	defer v.Clear()
	return v.Value(), nil
}

func toInt(v any) int {
	switch n := v.(type) {
	case int32:
		return int(n)
	case uint32:
		return int(n)
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// Getenv reads the persisted system and user variables. The last match wins,
// so a user value shadows the system one.
func (h *wmiHost) Getenv(_ context.Context, name string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := h.query(fmt.Sprintf("SELECT Name, VariableValue FROM Win32_Environment WHERE Name = '%s'", name), func(row *ole.IDispatch) error {
		v, err := property(row, "VariableValue")
		if err != nil {
			return err
		}
		if s, ok := v.(string); ok {
			value, found = s, true
		}
		return nil
	})
	return value, found, err
}

func (h *wmiHost) Spawn(_ context.Context, exe string, args []string) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.service == nil {
		return 0, errors.New("WMI host is closed")
	}

	classVar, err := oleutil.CallMethod(h.service, "Get", "Win32_Process")
	if err != nil {
		return 0, err
	}
	class := classVar.ToIDispatch()
	defer class.Release()

	methodsVar, err := oleutil.GetProperty(class, "Methods_")
	if err != nil {
		return 0, err
	}
	methods := methodsVar.ToIDispatch()
	defer methods.Release()
	createVar, err := oleutil.CallMethod(methods, "Item", "Create")
	if err != nil {
		return 0, err
	}
	create := createVar.ToIDispatch()
	defer create.Release()
	inVar, err := oleutil.GetProperty(create, "InParameters")
	if err != nil {
		return 0, err
	}
	inClass := inVar.ToIDispatch()
	defer inClass.Release()
	paramsVar, err := oleutil.CallMethod(inClass, "SpawnInstance_")
	if err != nil {
		return 0, err
	}
	params := paramsVar.ToIDispatch()
	defer params.Release()
	if _, err := oleutil.PutProperty(params, "CommandLine", CommandLine(exe, args)); err != nil {
		return 0, err
	}

	outVar, err := oleutil.CallMethod(h.service, "ExecMethod", "Win32_Process", "Create", params)
	if err != nil {
		return 0, err
	}
	out := outVar.ToIDispatch()
	defer out.Release()
	ret, err := property(out, "ReturnValue")
	if err != nil {
		return 0, err
	}
	if code := toInt(ret); code != 0 {
		return 0, fmt.Errorf("Win32_Process.Create returned %d", code)
	}
	pid, err := property(out, "ProcessId")
	if err != nil {
		return 0, err
	}
	return toInt(pid), nil
}

func (h *wmiHost) Processes() procreap.Table {
	return wmiTable{h: h}
}

func (h *wmiHost) OS() string {
	return "windows"
}

func (h *wmiHost) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.service == nil {
		return nil
	}
	h.service.Release()
	h.locator.Release()
	h.service = nil
	h.locator = nil
	ole.CoUninitialize()
	return nil
}

type wmiTable struct {
	h *wmiHost
}

func (t wmiTable) Snapshot(context.Context) ([]procreap.Process, error) {
	var procs []procreap.Process
	err := t.h.query("SELECT ProcessId, ParentProcessId, Name FROM Win32_Process", func(row *ole.IDispatch) error {
		pid, err := property(row, "ProcessId")
		if err != nil {
			return err
		}
		ppid, err := property(row, "ParentProcessId")
		if err != nil {
			return err
		}
		name, _ := property(row, "Name")
		p := procreap.Process{PID: toInt(pid), HasParent: ppid != nil}
		p.PPID = toInt(ppid)
		p.Name, _ = name.(string)
		procs = append(procs, p)
		return nil
	})
	return procs, err
}

func (t wmiTable) Terminate(_ context.Context, p procreap.Process) error {
	t.h.log.Infof("shutting down %s ...", p.Name)
	return t.h.query(fmt.Sprintf("SELECT * FROM Win32_Process WHERE ProcessId = %d", p.PID), func(row *ole.IDispatch) error {
		res, err := oleutil.CallMethod(row, "Terminate")
		if err != nil {
			return err
		}
		defer res.Clear()
		if code := toInt(res.Value()); code != 0 {
			return fmt.Errorf("terminate %d returned %d", p.PID, code)
		}
		return nil
	})
}
