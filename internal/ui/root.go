package ui

import (
	"errors"
	"image/color"
	"io"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/SlipperySkater/clippy-ai-agent/internal/config"
	"github.com/SlipperySkater/clippy-ai-agent/internal/controller"
	"github.com/SlipperySkater/clippy-ai-agent/internal/model"
	"github.com/SlipperySkater/clippy-ai-agent/internal/platform"
)

// File dialog filters
var (
	configExtensions = []string{".yaml", ".yml"}
	videoExtensions  = []string{".mp4", ".mkv", ".webm", ".mov", ".avi"}
	batchExtensions  = []string{".txt", ".list"}
)

// RootUI is the main window content. It implements controller.View; every
// view method marshals onto the UI thread, so the controller and runner may
// call them from any goroutine.
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	ctrl     *controller.Controller

	configEntry   *widget.Entry
	maxClipsEntry *widget.Entry
	sourceEntry   *widget.Entry
	titleEntry    *widget.Entry
	batchEntry    *widget.Entry

	processBtn    *widget.Button
	batchBtn      *widget.Button
	schedStartBtn *widget.Button
	schedStopBtn  *widget.Button

	logView     *LogView
	statusDot   *canvas.Circle
	statusLabel *widget.Label
	progressBar *widget.ProgressBar

	// controls toggled as one unit while a task runs
	controls []fyne.Disableable
}

// NewRootUI creates and initializes the main UI. AttachController must be
// called before the window is shown.
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: config.NewSettings(app),
		logView:  NewLogView(),
	}

	ui.setupUI()
	ui.restoreSettings()
	return ui
}

// AttachController binds the controller the buttons dispatch to
func (ui *RootUI) AttachController(ctrl *controller.Controller) {
	ui.ctrl = ctrl
}

// LogSink returns the writer the activity pane subscribes to the log
// stream with.
func (ui *RootUI) LogSink() io.Writer {
	return ui.logView.Sink()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.configEntry = widget.NewEntry()
	ui.configEntry.SetPlaceHolder(model.DefaultConfigPath)
	configBrowse := widget.NewButton(LabelBrowse, ui.onBrowseConfig)

	ui.maxClipsEntry = widget.NewEntry()
	ui.maxClipsEntry.SetText(strconv.Itoa(model.DefaultMaxClips))

	configForm := widget.NewForm(
		widget.NewFormItem("Config file", container.NewBorder(nil, nil, nil, configBrowse, ui.configEntry)),
		widget.NewFormItem("Max clips", ui.maxClipsEntry),
	)
	configCard := widget.NewCard("Agent", "", configForm)

	tabs := container.NewAppTabs(
		container.NewTabItem("Single video", ui.buildSingleTab()),
		container.NewTabItem("Batch", ui.buildBatchTab()),
		container.NewTabItem("Scheduler", ui.buildSchedulerTab()),
	)

	clearBtn := widget.NewButton(LabelClear, ui.onClearLog)
	copyBtn := widget.NewButton(LabelCopy, ui.onCopyLog)
	openBtn := widget.NewButton("Open Output", ui.onOpenOutput)
	logButtons := container.NewHBox(clearBtn, copyBtn, openBtn)
	activityCard := widget.NewCard("Activity", "",
		container.NewBorder(nil, logButtons, nil, nil, ui.logView.Object()))

	ui.statusDot = canvas.NewCircle(theme.Color(theme.ColorNameSuccess))
	dot := container.NewGridWrap(
		fyne.NewSize(StatusDotDiameter, StatusDotDiameter), ui.statusDot)
	ui.statusLabel = widget.NewLabel(controller.StatusReady)
	ui.progressBar = widget.NewProgressBar()

	statusBar := container.NewVBox(
		ui.progressBar,
		container.NewHBox(container.NewCenter(dot), ui.statusLabel),
	)

	content := container.NewBorder(
		configCard, container.NewVBox(activityCard, statusBar), nil, nil, tabs)

	ui.controls = append(ui.controls,
		ui.configEntry, configBrowse, ui.maxClipsEntry,
		ui.processBtn, ui.batchBtn, ui.schedStartBtn, ui.schedStopBtn,
		ui.sourceEntry, ui.titleEntry, ui.batchEntry,
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))
}

// buildSingleTab lays out the single-video form
func (ui *RootUI) buildSingleTab() fyne.CanvasObject {
	ui.sourceEntry = widget.NewEntry()
	ui.sourceEntry.SetPlaceHolder("Video URL or local file")
	ui.sourceEntry.OnSubmitted = func(string) { ui.onProcessSingle() }
	sourceBrowse := widget.NewButton(LabelBrowse, ui.onBrowseSource)

	ui.titleEntry = widget.NewEntry()
	ui.titleEntry.SetPlaceHolder("Optional title override")

	ui.processBtn = widget.NewButton("Process Video", ui.onProcessSingle)
	ui.processBtn.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem("Source", container.NewBorder(nil, nil, nil, sourceBrowse, ui.sourceEntry)),
		widget.NewFormItem("Title", ui.titleEntry),
	)

	ui.controls = append(ui.controls, sourceBrowse)
	return container.NewVBox(form, ui.processBtn)
}

// buildBatchTab lays out the batch-list form
func (ui *RootUI) buildBatchTab() fyne.CanvasObject {
	ui.batchEntry = widget.NewEntry()
	ui.batchEntry.SetPlaceHolder("File with one URL or path per line")
	batchBrowse := widget.NewButton(LabelBrowse, ui.onBrowseBatch)

	ui.batchBtn = widget.NewButton("Process Batch", ui.onProcessBatch)
	ui.batchBtn.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem("Batch file", container.NewBorder(nil, nil, nil, batchBrowse, ui.batchEntry)),
	)

	ui.controls = append(ui.controls, batchBrowse)
	return container.NewVBox(form, ui.batchBtn)
}

// buildSchedulerTab lays out the watch scheduler controls
func (ui *RootUI) buildSchedulerTab() fyne.CanvasObject {
	info := widget.NewLabel("Watches the playlists listed in the agent config and processes new uploads automatically.")
	info.Wrapping = fyne.TextWrapWord

	ui.schedStartBtn = widget.NewButton("Start Scheduler", ui.onStartScheduler)
	ui.schedStopBtn = widget.NewButton("Stop Scheduler", ui.onStopScheduler)

	return container.NewVBox(info, container.NewHBox(ui.schedStartBtn, ui.schedStopBtn))
}

// form snapshots the widgets into a value the controller can validate
func (ui *RootUI) form() model.Form {
	return model.Form{
		Source:        ui.sourceEntry.Text,
		TitleOverride: ui.titleEntry.Text,
		BatchFile:     ui.batchEntry.Text,
		ConfigFile:    ui.configEntry.Text,
		MaxClips:      ui.maxClipsEntry.Text,
	}
}

// restoreSettings loads the previous session's paths into the form
func (ui *RootUI) restoreSettings() {
	ui.configEntry.SetText(ui.settings.GetConfigPath())
	if batch := ui.settings.GetBatchFile(); batch != "" {
		ui.batchEntry.SetText(batch)
	}
	ui.maxClipsEntry.SetText(strconv.Itoa(ui.settings.GetMaxClips()))
}

// persistSettings remembers the form paths for the next session
func (ui *RootUI) persistSettings(form model.Form) {
	ui.settings.SetConfigPath(form.NormalizedConfigPath())
	if batch := form.NormalizedBatchFile(); batch != "" {
		ui.settings.SetBatchFile(batch)
	}
	ui.settings.SetMaxClips(form.ClampedMaxClips())
}

func (ui *RootUI) onProcessSingle() {
	form := ui.form()
	ui.persistSettings(form)
	ui.ctrl.ProcessSingle(form)
}

func (ui *RootUI) onProcessBatch() {
	form := ui.form()
	ui.persistSettings(form)
	ui.ctrl.ProcessBatch(form)
}

func (ui *RootUI) onStartScheduler() {
	form := ui.form()
	ui.persistSettings(form)
	ui.ctrl.StartScheduler(form)
}

func (ui *RootUI) onStopScheduler() {
	ui.ctrl.StopScheduler()
}

// onClearLog empties the activity pane
func (ui *RootUI) onClearLog() {
	ui.logView.Clear()
}

// onCopyLog puts the activity pane content on the clipboard
func (ui *RootUI) onCopyLog() {
	content := ui.logView.Content()
	if content == "" {
		dialog.ShowInformation("Activity log", "Nothing to copy yet.", ui.window)
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(content)
	widget.ShowPopUp(widget.NewLabel("Log copied to clipboard"), ui.window.Canvas())
}

// onOpenOutput opens the clips directory in the host OS
func (ui *RootUI) onOpenOutput() {
	dir := ui.ctrl.OutputDir()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.ShowError(err.Error())
		return
	}
	if err := platform.OpenFileWithDefaultApp(dir); err != nil {
		ui.ShowError(err.Error())
	}
}

func (ui *RootUI) onBrowseConfig() {
	ui.browseInto(ui.configEntry, configExtensions)
}

func (ui *RootUI) onBrowseSource() {
	ui.browseInto(ui.sourceEntry, videoExtensions)
}

func (ui *RootUI) onBrowseBatch() {
	ui.browseInto(ui.batchEntry, batchExtensions)
}

// browseInto opens a file dialog and writes the chosen path into the entry
func (ui *RootUI) browseInto(entry *widget.Entry, extensions []string) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		entry.SetText(reader.URI().Path())
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(extensions))
	fd.Show()
}

// ShowWarning implements controller.View
func (ui *RootUI) ShowWarning(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, ui.window)
	})
}

// ShowError implements controller.View
func (ui *RootUI) ShowError(message string) {
	fyne.Do(func() {
		dialog.ShowError(errors.New(message), ui.window)
	})
}

// SetStatus implements controller.View. The indicator color follows the
// traffic-light level derived from the text.
func (ui *RootUI) SetStatus(text string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(text)
		ui.statusDot.FillColor = statusColor(model.StatusLevelFor(text))
		ui.statusDot.Refresh()
	})
}

// SetControlsEnabled implements controller.View
func (ui *RootUI) SetControlsEnabled(enabled bool) {
	fyne.Do(func() {
		for _, c := range ui.controls {
			if enabled {
				c.Enable()
			} else {
				c.Disable()
			}
		}
	})
}

// SetProgress implements controller.View
func (ui *RootUI) SetProgress(value float64) {
	fyne.Do(func() {
		ui.progressBar.SetValue(value)
	})
}

// SetMaxClips implements controller.View
func (ui *RootUI) SetMaxClips(count int) {
	fyne.Do(func() {
		ui.maxClipsEntry.SetText(strconv.Itoa(count))
	})
}

// statusColor maps a status level to the theme's traffic-light palette
func statusColor(level model.StatusLevel) color.Color {
	switch level {
	case model.StatusLevelGreen:
		return theme.Color(theme.ColorNameSuccess)
	case model.StatusLevelRed:
		return theme.Color(theme.ColorNameError)
	default:
		return theme.Color(theme.ColorNameWarning)
	}
}
