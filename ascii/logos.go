package ascii

import "strings"

// DefaultName is the entry used when no logo matches the detected OS.
const DefaultName = "Linux"

// Logos is the built-in logo table.
var Logos = NewTable([]Entry{
	NewEntry("Alpine", false, []int{4, 5, 7, 6}, art(
		"${c1}       .hddddddddddddddddddddddh.",
		"      :dddddddddddddddddddddddddd:",
		"     /dddddddddddddddddddddddddddd/",
		"    +dddddddddddddddddddddddddddddd+",
		"  `sdddddddddddddddddddddddddddddddds`",
		" `ydddddddddddd++hdddddddddddddddddddy`",
		".hddddddddddd+`  `+ddddh:-sdddddddddddh.",
		"hdddddddddd+`      `+y:    .sddddddddddh",
		"ddddddddh+`   `//`   `.`     -sddddddddd",
		"ddddddh+`   `/hddh/`   `:s-    -sddddddd",
		"ddddh+`   `/+/dddddh/`   `+s-    -sddddd",
		"ddd+`   `/o` :dddddddh/`   `oy-    .yddd",
		"hdddyo+ohddyosdddddddddho+oydddy++ohdddh",
		".hddddddddddddddddddddddddddddddddddddh.",
		" `yddddddddddddddddddddddddddddddddddy`",
		"  `sdddddddddddddddddddddddddddddddds`",
		"    +dddddddddddddddddddddddddddddd+",
		"     /dddddddddddddddddddddddddddd/",
		"      :dddddddddddddddddddddddddd:",
		"       .hddddddddddddddddddddddh.",
	)),
	NewEntry("Arch", false, []int{6, 6, 7, 1}, art(
		"${c1}                   -`",
		"                  .o+`",
		"                 `ooo/",
		"                `+oooo:",
		"               `+oooooo:",
		"               -+oooooo+:",
		"             `/:-:++oooo+:",
		"            `/++++/+++++++:",
		"           `/++++++++++++++:",
		"          `/+++o${c2}oooooooo${c1}oooo/`",
		"${c2}         ${c1}./${c2}ooosssso++osssssso${c1}+`",
		"${c2}        .oossssso-````/ossssss+`",
		"       -osssssso.      :ssssssso.",
		"      :osssssss/        osssso+++.",
		"     /ossssssss/        +ssssooo/-",
		"   `/ossssso+/:-        -:/+osssso+-",
		"  `+sso+:-`                 `.-/+oso:",
		" `++:.                           `-/+/",
		" .`                                 `/",
	)),
	NewEntry("Debian", false, []int{1, 7, 3}, art(
		"${c2}       _,met$$$$$gg.",
		"    ,g$$$$$$$$$$$$$$$P.",
		"  ,g$$P\"     \"\"\"Y$$.\".",
		" ,$$P'              `$$$.",
		"',$$P       ,ggs.     `$$b:",
		"`d$$'     ,$P\"'   ${c1}.${c2}    $$$",
		" $$P      d$'     ${c1},${c2}    $$P",
		" $$:      $$.   ${c1}-${c2}    ,d$$'",
		" $$;      Y$b._   _,d$P'",
		" Y$$.    ${c1}`.${c2}`\"Y$$$$P\"'",
		"${c2} `$$b      ${c1}\"-.__",
		"${c2}  `Y$$",
		"   `Y$$.",
		"     `$$b.",
		"       `Y$$b.",
		"          `\"Y$b._",
		"              `\"\"\"",
	)),
	NewEntry("Fedora", false, []int{12, 7}, art(
		"${c1}        ,'''''.",
		"       |   ,.  |",
		"       |  |  '_'",
		"  ,....|  |..",
		".'  ,_;|   ..'",
		"|  |   |  |",
		"|  ',_,'  |",
		" '.     ,'",
		"   '''''",
	)),
	NewEntry("Gentoo", false, []int{5, 7}, art(
		"${c1} _-----_",
		"(       \\",
		"\\    0   \\",
		"${c2} \\        )",
		" /      _/",
		"(     _-",
		"\\____-",
	)),
	NewEntry("Linux", false, []int{7, 8, 3}, art(
		"${c2}        #####",
		"${c2}       #######",
		"${c2}       ##${c1}O${c2}#${c1}O${c2}##",
		"${c2}       #${c3}#####${c2}#",
		"${c2}     ##${c1}##${c3}###${c1}##${c2}##",
		"${c2}    #${c1}##########${c2}##",
		"${c2}   #${c1}############${c2}##",
		"${c2}   #${c1}############${c2}###",
		"${c3}  ##${c2}#${c1}###########${c2}##${c3}#",
		"${c3}######${c2}#${c1}#######${c2}#${c3}######",
		"${c3}#######${c2}#${c1}#####${c2}#${c3}#######",
		"${c3}  #####${c2}#######${c3}#####",
	)),
	NewEntry("Manjaro", false, []int{2, 7}, art(
		"${c1}||||||||| ||||",
		"||||||||| ||||",
		"||||      ||||",
		"|||| |||| ||||",
		"|||| |||| ||||",
		"|||| |||| ||||",
		"|||| |||| ||||",
	)),
	NewEntry("NixOS", false, []int{4, 6}, art(
		"${c1}  \\\\  \\\\ //",
		" ==\\\\__\\\\/ //",
		"   //   \\\\//",
		"==//     //==",
		" //\\\\___//",
		"// /\\\\  \\\\==",
		"  // \\\\  \\\\",
	)),
	NewEntry("openSUSE", true, []int{2, 7}, art(
		"${c1}  _______",
		"__|   __ \\",
		"     / .\\ \\",
		"     \\__/ |",
		"   _______|",
		"   \\_______",
		"__________/",
	)),
	NewEntry("Ubuntu", true, []int{1}, art(
		"${c1}         _",
		"     ---(_)",
		" _/  ---  \\",
		"(_) |   |",
		"  \\  --- _/",
		"     ---(_)",
	)),
})

// art joins logo rows.
func art(lines ...string) string {
	return strings.Join(lines, "\n")
}
