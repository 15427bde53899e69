package sdk

import (
	"github.com/wippyai/boardgen/catalog"
	"github.com/wippyai/boardgen/mhs"
)

func driver(name, version, instance string) mhs.Block {
	return mhs.NewBlock("DRIVER",
		mhs.Param("DRIVER_NAME", mhs.Ident(name)),
		mhs.Param("DRIVER_VER", mhs.Ident(version)),
		mhs.Param("HW_INSTANCE", mhs.Ident(instance)),
	)
}

// baseMSS returns the board support package every server links against.
func baseMSS() mhs.File {
	return mhs.File{}.
		AddAttribute(mhs.Param("VERSION", mhs.Ident(catalog.MSSVersion))).
		AddBlock(
			mhs.NewBlock("OS",
				mhs.Param("OS_NAME", mhs.Ident(catalog.DefaultOSName)),
				mhs.Param("OS_VER", mhs.Ident(catalog.OSVersion)),
				mhs.Param("PROC_INSTANCE", mhs.Ident(catalog.ProcessorName)),
				mhs.Param("STDIN", mhs.Ident(catalog.StdioInstance)),
				mhs.Param("STDOUT", mhs.Ident(catalog.StdioInstance)),
			),
			mhs.NewBlock("PROCESSOR",
				mhs.Param("DRIVER_NAME", mhs.Ident("cpu")),
				mhs.Param("DRIVER_VER", mhs.Ident(catalog.CPUDriver)),
				mhs.Param("HW_INSTANCE", mhs.Ident(catalog.ProcessorName)),
			),
			driver("tmrctr", catalog.TimerDriver, catalog.TimerInstance),
			driver("v6_ddrx", catalog.DDRDriver, catalog.DDRInstance),
			driver("bram", catalog.BRAMDriver, catalog.DataBRAMCtrl),
			driver("bram", catalog.BRAMDriver, catalog.InstrBRAMCtrl),
			driver("intc", catalog.IntcDriver, catalog.IntcInstance),
			driver("uartlite", catalog.UartliteDriver, catalog.DebugInstance),
			driver("uartlite", catalog.UartliteDriver, catalog.StdioInstance),
		)
}
